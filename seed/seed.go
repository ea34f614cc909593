// Package seed supplies the demo data a fresh process starts with: the device
// identifier, placeholder phone numbers and an optional YAML seed file.
package seed

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

const (
	DeviceIDPrefix = "ALERTA-"
	deviceIDLen    = 9
	base36         = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Provider generates demo identifiers from a random source.
type Provider struct {
	rand *rand.Rand
}

// NewProvider returns a [Provider] reading from src, or from an unseeded source when nil.
func NewProvider(src rand.Source) *Provider {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Provider{rand: rand.New(src)}
}

// DeviceID returns an opaque device label such as "ALERTA-K3J9Z0QWE".
func (p *Provider) DeviceID() string {
	var b strings.Builder
	b.Grow(len(DeviceIDPrefix) + deviceIDLen)
	b.WriteString(DeviceIDPrefix)
	for range deviceIDLen {
		b.WriteByte(base36[p.rand.IntN(len(base36))])
	}
	return b.String()
}

// PhoneNumber returns a German-style mobile number such as "+49 165 1234567".
func (p *Provider) PhoneNumber() string {
	prefix := 150 + p.rand.IntN(30)         //nolint: mnd // 150-179
	number := 1_000_000 + p.rand.IntN(9e6) //nolint: mnd // 7 digits
	return fmt.Sprintf("+49 %d %d", prefix, number)
}
