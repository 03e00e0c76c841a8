package config

import (
	"fmt"
	"net/url"
	"strings"
)

// URLPrefix базовый адрес коротких ссылок. Пустое значение означает
// scheme://host входящего запроса.
type URLPrefix string

func (p URLPrefix) String() string {
	return string(p)
}

func (p *URLPrefix) Set(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		*p = ""
		return nil
	}

	parsed, err := url.Parse(value)
	if err != nil {
		return fmt.Errorf("invalid base URL %q: %w", value, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("base URL %q must use http or https", value)
	}
	if parsed.Host == "" {
		return fmt.Errorf("base URL %q has no host", value)
	}

	*p = URLPrefix(strings.TrimRight(value, "/"))

	return nil
}

func (p *URLPrefix) UnmarshalText(text []byte) error {
	return p.Set(string(text))
}
