package config

// HTTPClientConfig configures the outbound webhook client.
type HTTPClientConfig struct {
	TimeoutSecs        int               `json:"timeout_secs,omitempty" yaml:"timeout_secs,omitempty" env:"DISCORDHOOK_HTTP_TIMEOUT_SECS" validate:"min=1"`
	Proxy              string            `json:"proxy,omitempty" yaml:"proxy,omitempty" env:"DISCORDHOOK_HTTP_PROXY" validate:"omitempty,url"`
	InsecureSkipVerify bool              `json:"insecure_skip_verify" yaml:"insecure_skip_verify" env:"DISCORDHOOK_HTTP_INSECURE"`
	FollowRedirects    bool              `json:"follow_redirects" yaml:"follow_redirects"`
	MaxRedirects       int               `json:"max_redirects,omitempty" yaml:"max_redirects,omitempty" validate:"min=0"`
	EnableHTTP2        bool              `json:"enable_http2" yaml:"enable_http2" env:"DISCORDHOOK_HTTP2"`
	UserAgent          string            `json:"user_agent,omitempty" yaml:"user_agent,omitempty" env:"DISCORDHOOK_USER_AGENT"`
	CustomHeaders      map[string]string `json:"custom_headers,omitempty" yaml:"custom_headers,omitempty" env:"DISCORDHOOK_HTTP_HEADERS"`
	MaxErrorBodySize   int               `json:"max_error_body_size,omitempty" yaml:"max_error_body_size,omitempty" validate:"min=0"`
}

// NewDefaultHTTPClientConfig creates default HTTP client configuration
func NewDefaultHTTPClientConfig() HTTPClientConfig {
	return HTTPClientConfig{
		TimeoutSecs:      DefaultHTTPTimeoutSecs,
		FollowRedirects:  true,
		MaxRedirects:     DefaultHTTPMaxRedirects,
		EnableHTTP2:      true,
		CustomHeaders:    make(map[string]string),
		MaxErrorBodySize: DefaultHTTPMaxErrorBodySize,
	}
}
