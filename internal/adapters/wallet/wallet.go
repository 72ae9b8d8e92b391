package wallet

import (
	"encoding/json"
	"fmt"

	"github.com/trebuchet-org/mosaic/internal/domain"
)

// RequestError is an EIP-1193 provider error
type RequestError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s (code %d)", e.Message, e.Code)
}

// ErrorCode returns the wallet error code
func (e *RequestError) ErrorCode() int {
	return e.Code
}

func userRejected() *RequestError {
	return &RequestError{Code: domain.WalletCodeUserRejected, Message: "User rejected the request."}
}

func unknownChain(chainID string) *RequestError {
	return &RequestError{
		Code:    domain.WalletCodeUnknownChain,
		Message: fmt.Sprintf("Unrecognized chain ID %q. Try adding the chain using wallet_addEthereumChain first.", chainID),
	}
}

func unsupportedMethod(method string) *RequestError {
	return &RequestError{Code: domain.WalletCodeUnsupported, Message: fmt.Sprintf("The method %q is not supported.", method)}
}

// decodeParam converts a request parameter into a typed value through its JSON form
func decodeParam(params []any, index int, out any) error {
	if index >= len(params) {
		return &RequestError{Code: domain.WalletCodeInvalidParams, Message: "missing request parameter"}
	}
	data, err := json.Marshal(params[index])
	if err != nil {
		return &RequestError{Code: domain.WalletCodeInvalidParams, Message: err.Error()}
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &RequestError{Code: domain.WalletCodeInvalidParams, Message: err.Error()}
	}
	return nil
}

// setResult stores value into result the way a JSON-RPC response would
func setResult(result any, value any) error {
	if result == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, result)
}
