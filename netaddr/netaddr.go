// Package netaddr renders IP and socket addresses as the address types of the
// target's core::net module.
//
// Importing the package also registers renderers for netip.Addr and
// netip.AddrPort, so plain net/netip values inside derived structs render as
// IpAddr and SocketAddr.
package netaddr

import (
	"encoding/binary"
	"errors"
	"fmt"
	"net/netip"
	"reflect"
	"strconv"
	"strings"

	"fortio.org/safecast"

	"const-generator/render"
)

const pkgPath = "core::net::"

var (
	ErrNotIPv4     = errors.New("address is not an IPv4 address")
	ErrNotIPv6     = errors.New("address is not an IPv6 address")
	ErrInvalidAddr = errors.New("invalid address")
	ErrScopeID     = errors.New("zone is not a numeric scope id")
)

// Ipv4Addr is an IPv4 address: core::net::Ipv4Addr.
type Ipv4Addr netip.Addr

// Ipv6Addr is an IPv6 address: core::net::Ipv6Addr. IPv4 addresses render in
// their IPv4-mapped form.
type Ipv6Addr netip.Addr

// IpAddr is either an IPv4 or an IPv6 address: core::net::IpAddr.
type IpAddr netip.Addr

// SocketAddr is an address and a port: core::net::SocketAddr.
type SocketAddr netip.AddrPort

// SocketAddrV4 is an IPv4 address and a port: core::net::SocketAddrV4.
type SocketAddrV4 netip.AddrPort

// SocketAddrV6 is an IPv6 socket address: core::net::SocketAddrV6.
type SocketAddrV6 struct {
	AddrPort netip.AddrPort
	FlowInfo uint32
	ScopeID  uint32
}

// ParseIpv4 parses a dotted IPv4 address.
func ParseIpv4(s string) (Ipv4Addr, error) {
	a, err := netip.ParseAddr(s)
	if err != nil {
		return Ipv4Addr{}, fmt.Errorf("%w: %w", ErrInvalidAddr, err)
	}

	if !a.Is4() {
		return Ipv4Addr{}, fmt.Errorf("%w: %s", ErrNotIPv4, s)
	}

	return Ipv4Addr(a), nil
}

// ParseIpv6 parses an IPv6 address. A zone is not part of the address and
// is rejected; use NewSocketAddrV6 to keep it as a scope id.
func ParseIpv6(s string) (Ipv6Addr, error) {
	a, err := netip.ParseAddr(s)
	if err != nil {
		return Ipv6Addr{}, fmt.Errorf("%w: %w", ErrInvalidAddr, err)
	}

	if !a.Is6() || a.Zone() != "" {
		return Ipv6Addr{}, fmt.Errorf("%w: %s", ErrNotIPv6, s)
	}

	return Ipv6Addr(a), nil
}

// NewSocketAddrV4 checks that ap holds an IPv4 address.
func NewSocketAddrV4(ap netip.AddrPort) (SocketAddrV4, error) {
	if !ap.Addr().Is4() {
		return SocketAddrV4{}, fmt.Errorf("%w: %s", ErrNotIPv4, ap)
	}

	return SocketAddrV4(ap), nil
}

// NewSocketAddrV6 builds an IPv6 socket address. A numeric zone, as in
// "[fe80::1%3]:80", becomes the scope id.
func NewSocketAddrV6(ap netip.AddrPort, flowInfo uint32) (SocketAddrV6, error) {
	a := ap.Addr()
	if !a.Is6() {
		return SocketAddrV6{}, fmt.Errorf("%w: %s", ErrNotIPv6, ap)
	}

	scope, err := scopeID(a.Zone())
	if err != nil {
		return SocketAddrV6{}, err
	}

	return SocketAddrV6{
		AddrPort: netip.AddrPortFrom(a.WithZone(""), ap.Port()),
		FlowInfo: flowInfo,
		ScopeID:  scope,
	}, nil
}

func scopeID(zone string) (uint32, error) {
	if zone == "" {
		return 0, nil
	}

	n, err := strconv.ParseUint(zone, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrScopeID, zone)
	}

	id, err := safecast.Conv[uint32](n)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrScopeID, zone, err)
	}

	return id, nil
}

func (Ipv4Addr) ConstType() string { return pkgPath + "Ipv4Addr" }

// ConstVal panics with ErrInvalidAddr on the zero value and with ErrNotIPv4
// on an IPv6 address; the render entry points report both as errors.
func (v Ipv4Addr) ConstVal() string {
	b := octets(netip.Addr(v))

	parts := make([]string, len(b))
	for i, x := range b {
		parts[i] = strconv.Itoa(int(x))
	}

	return pkgPath + "Ipv4Addr::new(" + strings.Join(parts, ",") + ")"
}

func (Ipv6Addr) ConstType() string { return pkgPath + "Ipv6Addr" }

func (v Ipv6Addr) ConstVal() string {
	b := valid(netip.Addr(v)).As16()

	parts := make([]string, len(b)/2)
	for i := range parts {
		parts[i] = strconv.FormatUint(uint64(binary.BigEndian.Uint16(b[2*i:])), 10)
	}

	return pkgPath + "Ipv6Addr::new(" + strings.Join(parts, ",") + ")"
}

func (IpAddr) ConstType() string { return pkgPath + "IpAddr" }

func (v IpAddr) ConstVal() string {
	if netip.Addr(v).Is4() {
		return pkgPath + "IpAddr::V4(" + Ipv4Addr(v).ConstVal() + ")"
	}

	return pkgPath + "IpAddr::V6(" + Ipv6Addr(v).ConstVal() + ")"
}

func (SocketAddr) ConstType() string { return pkgPath + "SocketAddr" }

func (v SocketAddr) ConstVal() string {
	ap := netip.AddrPort(v)
	return pkgPath + "SocketAddr::new(" + IpAddr(ap.Addr()).ConstVal() + ", " + strconv.Itoa(int(ap.Port())) + ")"
}

func (SocketAddrV4) ConstType() string { return pkgPath + "SocketAddrV4" }

func (v SocketAddrV4) ConstVal() string {
	ap := netip.AddrPort(v)
	return pkgPath + "SocketAddrV4::new(" + Ipv4Addr(ap.Addr()).ConstVal() + ", " + strconv.Itoa(int(ap.Port())) + ")"
}

func (SocketAddrV6) ConstType() string { return pkgPath + "SocketAddrV6" }

func (v SocketAddrV6) ConstVal() string {
	return fmt.Sprintf("%sSocketAddrV6::new(%s, %d, %d, %d)",
		pkgPath, Ipv6Addr(v.AddrPort.Addr()).ConstVal(), v.AddrPort.Port(), v.FlowInfo, v.ScopeID)
}

// valid panics with ErrInvalidAddr if a is the zero Addr.
func valid(a netip.Addr) netip.Addr {
	if !a.IsValid() {
		panic(fmt.Errorf("%w: zero address", ErrInvalidAddr))
	}

	return a
}

// octets returns the bytes of an IPv4 or IPv4-mapped address.
func octets(a netip.Addr) [4]byte {
	a = valid(a).Unmap()
	if !a.Is4() {
		panic(fmt.Errorf("%w: %s", ErrNotIPv4, a))
	}

	return a.As4()
}

func init() {
	must(render.RegisterFunc[netip.Addr](render.Func{
		Type: IpAddr{}.ConstType,
		Value: func(v reflect.Value) (string, error) {
			a := v.Interface().(netip.Addr)
			if !a.IsValid() {
				return "", fmt.Errorf("%w: zero netip.Addr", ErrInvalidAddr)
			}

			return IpAddr(a).ConstVal(), nil
		},
	}))

	must(render.RegisterFunc[netip.AddrPort](render.Func{
		Type: SocketAddr{}.ConstType,
		Value: func(v reflect.Value) (string, error) {
			ap := v.Interface().(netip.AddrPort)
			if !ap.IsValid() {
				return "", fmt.Errorf("%w: zero netip.AddrPort", ErrInvalidAddr)
			}

			return SocketAddr(ap).ConstVal(), nil
		},
	}))
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
