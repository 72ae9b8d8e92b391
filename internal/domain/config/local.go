package config

// LocalConfig represents the local mosaic configuration
type LocalConfig struct {
	Network   string `json:"network"`
	Wallet    string `json:"wallet,omitempty"`
	Generator string `json:"generator,omitempty"`
}

// ConfigKey represents a configuration key
type ConfigKey string

const (
	ConfigKeyNetwork   ConfigKey = "network"
	ConfigKeyWallet    ConfigKey = "wallet"
	ConfigKeyGenerator ConfigKey = "generator"
)

// DefaultLocalConfig returns the default local configuration
func DefaultLocalConfig() *LocalConfig {
	return &LocalConfig{}
}

// ValidConfigKeys returns all valid configuration keys
func ValidConfigKeys() []ConfigKey {
	return []ConfigKey{
		ConfigKeyNetwork,
		ConfigKeyWallet,
		ConfigKeyGenerator,
	}
}

// IsValidConfigKey checks if a key is valid
func IsValidConfigKey(key string) bool {
	for _, validKey := range ValidConfigKeys() {
		if string(validKey) == key || (key == "net" && validKey == ConfigKeyNetwork) {
			return true
		}
	}
	return false
}

// NormalizeConfigKey normalizes a config key (e.g., "net" -> "network")
func NormalizeConfigKey(key string) ConfigKey {
	if key == "net" {
		return ConfigKeyNetwork
	}
	return ConfigKey(key)
}

// Get returns the value stored for key
func (c *LocalConfig) Get(key ConfigKey) string {
	switch key {
	case ConfigKeyNetwork:
		return c.Network
	case ConfigKeyWallet:
		return c.Wallet
	case ConfigKeyGenerator:
		return c.Generator
	}
	return ""
}

// Set stores value for key
func (c *LocalConfig) Set(key ConfigKey, value string) {
	switch key {
	case ConfigKeyNetwork:
		c.Network = value
	case ConfigKeyWallet:
		c.Wallet = value
	case ConfigKeyGenerator:
		c.Generator = value
	}
}
