package together

import (
	"fmt"

	"excuses/internal/config"
	"excuses/internal/validation"
)

// FromConfig builds the generation client for the resolved deployment mode.
// ok is false in restricted mode, where no remote call is made. Proxy mode
// sends no credential.
func FromConfig(cfg *config.Config) (c *Client, ok bool, err error) {
	mode := cfg.Mode()
	if mode == config.ModeRestricted {
		return nil, false, nil
	}

	endpoint := cfg.RemoteURL()
	if valid, msg := validation.ValidateURL(endpoint); !valid {
		return nil, false, fmt.Errorf("invalid generation endpoint %q: %s", endpoint, msg)
	}

	opts := []Option{
		WithEndpoint(endpoint),
		WithModel(cfg.TogetherModel),
		WithTimeout(cfg.RemoteTimeout),
	}
	if mode == config.ModeDirect {
		opts = append(opts, WithAPIKey(cfg.TogetherAPIKey))
	}
	return New(opts...), true, nil
}

// UpstreamFromConfig builds the client the proxy route relays through. It
// always targets the real endpoint with the server's key.
func UpstreamFromConfig(cfg *config.Config) *Client {
	return New(
		WithEndpoint(cfg.TogetherEndpoint),
		WithAPIKey(cfg.TogetherAPIKey),
		WithTimeout(cfg.RemoteTimeout),
	)
}
