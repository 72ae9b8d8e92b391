package domain

// StatusKind is the severity of a deployment status message
type StatusKind string

const (
	StatusInfo    StatusKind = "info"
	StatusSuccess StatusKind = "success"
	StatusError   StatusKind = "error"
)

// DeploymentStatus is a transient message describing deployment progress
type DeploymentStatus struct {
	Kind    StatusKind `json:"kind"`
	Message string     `json:"message"`
}

// InfoStatus creates an info status
func InfoStatus(message string) DeploymentStatus {
	return DeploymentStatus{Kind: StatusInfo, Message: message}
}

// Deployment is the outcome of a successful deployment
type Deployment struct {
	Network         *NetworkDescriptor `json:"-"`
	NetworkName     string             `json:"network"`
	Account         string             `json:"account"`
	TransactionHash string             `json:"transactionHash"`
	Address         string             `json:"address"`
	ExplorerURL     string             `json:"explorerUrl"`
	BlockNumber     uint64             `json:"blockNumber"`
	PayloadSource   string             `json:"payloadSource"`

	// CodeVerified is set when the deployed code was checked on-chain
	CodeVerified *bool `json:"codeVerified,omitempty"`
}

// Status returns the success status shown to the user
func (d *Deployment) Status() DeploymentStatus {
	return DeploymentStatus{
		Kind:    StatusSuccess,
		Message: "Contract deployed! View on Explorer: " + d.ExplorerURL,
	}
}

// CompiledContract is the deployable output of compiling assembled source
type CompiledContract struct {
	ContractName string
	Bytecode     []byte
	ABI          []byte
	// Source names where the bytecode came from, e.g. "solc" or "demo"
	Source string
}
