package config

import (
	"fmt"
	"net"
	"strconv"
)

// NetworkAddress адрес HTTP сервера вида host:port. Пустой host означает все интерфейсы.
type NetworkAddress struct {
	Host string
	Port int
}

func (a NetworkAddress) String() string {
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

func (a *NetworkAddress) Set(value string) error {
	host, rawPort, err := net.SplitHostPort(value)
	if err != nil {
		return fmt.Errorf("invalid network address %q: %w", value, err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", rawPort, err)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port %d out of range", port)
	}

	a.Host = host
	a.Port = port

	return nil
}

func (a *NetworkAddress) UnmarshalText(text []byte) error {
	return a.Set(string(text))
}
