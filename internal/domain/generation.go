package domain

import (
	"strings"
	"time"
)

// DefaultSystemInstruction is sent with every generation request
const DefaultSystemInstruction = `You are an expert Solidity smart contract developer specializing in Mantle blockchain contracts.
Generate a production-ready Solidity smart contract based on the user's requirements.
Ensure the contract:
- Is compatible with Solidity ^0.8.19
- Follows Mantle blockchain best practices
- Includes appropriate comments
- Implements necessary security checks
- Optimizes for gas efficiency`

// GenerationRequest is a single prompt-to-text request
type GenerationRequest struct {
	System      string
	Prompt      string
	Model       string
	MaxTokens   int
	Temperature float64
}

// GenerationResult holds the text returned by the generator
type GenerationResult struct {
	Contract  string    `json:"contract"`
	Prompt    string    `json:"prompt,omitempty"`
	Source    string    `json:"source,omitempty"` // "generated" or the loaded file path
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsEmpty reports whether there is no held contract text
func (r *GenerationResult) IsEmpty() bool {
	return r == nil || r.Contract == ""
}

// SavedContractFilename builds the download name for a generated contract,
// e.g. Mantle_Contract_2024-05-01T10_20_30_123Z.sol
func SavedContractFilename(prefix string, at time.Time) string {
	stamp := at.UTC().Format("2006-01-02T15:04:05.000Z")
	stamp = strings.NewReplacer(":", "_", ".", "_").Replace(stamp)
	return prefix + stamp + ".sol"
}

// ExamplePrompt is a canned prompt offered to users
type ExamplePrompt struct {
	Title  string `json:"title"`
	Prompt string `json:"prompt"`
}

// ExamplePrompts lists the built-in prompt suggestions
var ExamplePrompts = []ExamplePrompt{
	{
		Title:  "Cross-Chain Token Bridge",
		Prompt: "Design a cross-chain ERC20 token bridge between Mantle L1 and L2, implementing secure proof verification and gas-optimized transfer mechanisms.",
	},
	{
		Title:  "Meta Transaction Gasless Wallet",
		Prompt: "Create a meta-transaction enabled wallet contract for Mantle that allows gasless transactions, with nonce management and signature verification using Mantle's gas price oracle.",
	},
	{
		Title:  "Dynamic Gas Price NFT Marketplace",
		Prompt: "Develop an NFT marketplace contract that dynamically adjusts listing fees based on Mantle's current gas price oracle, with built-in royalty mechanisms and role-based access control.",
	},
	{
		Title:  "Yield Farming with Mantle Optimization",
		Prompt: "Implement a yield farming contract that leverages Mantle's low-gas architecture, including staking, reward distribution, and adaptive reward calculations.",
	},
	{
		Title:  "Governance Token with Delegation",
		Prompt: "Design a governance token contract for a DAO on Mantle, implementing token delegation, voting power calculation, and proposal execution with gas-efficient mechanisms.",
	},
	{
		Title:  "Insurance Pool with Risk Management",
		Prompt: "Create a decentralized insurance pool contract on Mantle with dynamic risk assessment, premium calculation, and claim verification using role-based access controls.",
	},
	{
		Title:  "Multi-Signature Treasury Management",
		Prompt: "Develop a multi-signature treasury management contract optimized for Mantle, with configurable signers, transaction thresholds, and gas-efficient execution.",
	},
	{
		Title:  "Subscription Service Contract",
		Prompt: "Build a gas-optimized subscription service contract that supports recurring payments, automatic renewals, and Mantle-specific fee management.",
	},
	{
		Title:  "Decentralized Identity Verification",
		Prompt: "Design a decentralized identity verification contract on Mantle that allows secure, non-transferable identity tokens with role-based access and privacy features.",
	},
	{
		Title:  "Automated Liquidity Management",
		Prompt: "Create an automated liquidity management contract for decentralized exchanges on Mantle, implementing dynamic fee tiers and gas-optimized rebalancing strategies.",
	},
	{
		Title:  "Carbon Credit Trading Platform",
		Prompt: "Develop a carbon credit trading platform contract on Mantle with verifiable carbon offset tracking, transparent trading mechanisms, and role-based administrative controls.",
	},
	{
		Title:  "Fractional Real Estate Tokenization",
		Prompt: "Design a fractional real estate tokenization contract that supports secure token minting, dividend distribution, and Mantle-optimized transfer mechanisms.",
	},
}
