package shared

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/Netflix/go-env"
)

// Settings are the optional values every command reads.
type Settings struct {
	Network   string `env:"NETWORK,default=testnet"`
	LogLevel  string `env:"LOG_LEVEL,default=info"`
	LogFormat string `env:"LOG_FORMAT,default=text"`
	FaucetURL string `env:"FAUCET_URL"`
}

// OnboardingConfig holds the endpoint and the two account seeds needed to
// submit an onboarding batch.
type OnboardingConfig struct {
	RPCURL     string `env:"RPC_URL,required=true"`
	IssuerSeed string `env:"ISSUER_SEED,required=true"`
	NurseSeed  string `env:"NURSE_SEED,required=true"`
	Network    string `env:"NETWORK,default=testnet"`
}

// LogValue keeps seeds out of log output.
func (c OnboardingConfig) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("rpc_url", c.RPCURL),
		slog.String("network", c.Network),
		slog.String("issuer_seed", redact(c.IssuerSeed)),
		slog.String("nurse_seed", redact(c.NurseSeed)),
	)
}

// LoadSettings reads Settings from the environment and any .env file.
func LoadSettings() (*Settings, error) {
	environment, err := environSet()
	if err != nil {
		return nil, err
	}
	return LoadSettingsFrom(environment)
}

// LoadSettingsFrom reads Settings from an explicit variable set.
func LoadSettingsFrom(environment env.EnvSet) (*Settings, error) {
	var settings Settings
	if err := env.Unmarshal(environment, &settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal environment variables: %w", err)
	}

	network, err := NormalizeNetwork(settings.Network)
	if err != nil {
		return nil, err
	}
	settings.Network = network

	if _, err := ParseLogLevel(settings.LogLevel); err != nil {
		return nil, err
	}
	if format := strings.ToLower(settings.LogFormat); format != LogFormatText && format != LogFormatJSON {
		return nil, fmt.Errorf("invalid LOG_FORMAT %q: must be text or json", settings.LogFormat)
	}

	return &settings, nil
}

// LoadOnboardingConfig reads OnboardingConfig from the environment and any
// .env file. A missing value is an error; nothing touches the network first.
func LoadOnboardingConfig() (*OnboardingConfig, error) {
	environment, err := environSet()
	if err != nil {
		return nil, err
	}
	return LoadOnboardingConfigFrom(environment)
}

// LoadOnboardingConfigFrom reads OnboardingConfig from an explicit variable set.
func LoadOnboardingConfigFrom(environment env.EnvSet) (*OnboardingConfig, error) {
	var config OnboardingConfig
	if err := env.Unmarshal(environment, &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal environment variables: %w", err)
	}

	config.RPCURL = strings.TrimSpace(config.RPCURL)
	config.IssuerSeed = strings.TrimSpace(config.IssuerSeed)
	config.NurseSeed = strings.TrimSpace(config.NurseSeed)

	if err := validateOnboardingConfig(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

func validateOnboardingConfig(config *OnboardingConfig) error {
	if config.RPCURL == "" {
		return fmt.Errorf("RPC_URL is required")
	}
	if !strings.HasPrefix(config.RPCURL, "http://") && !strings.HasPrefix(config.RPCURL, "https://") {
		return fmt.Errorf("RPC_URL must be an http or https URL")
	}
	if config.IssuerSeed == "" {
		return fmt.Errorf("ISSUER_SEED is required")
	}
	if config.NurseSeed == "" {
		return fmt.Errorf("NURSE_SEED is required")
	}
	if config.IssuerSeed == config.NurseSeed {
		return fmt.Errorf("ISSUER_SEED and NURSE_SEED must identify different accounts")
	}

	network, err := NormalizeNetwork(config.Network)
	if err != nil {
		return err
	}
	config.Network = network
	return nil
}

func environSet() (env.EnvSet, error) {
	loadDotEnvIfPresent()
	environment, err := env.EnvironToEnvSet(os.Environ())
	if err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	return environment, nil
}

func redact(secret string) string {
	if secret == "" {
		return ""
	}
	return "[redacted]"
}
