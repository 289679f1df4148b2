package ip4list

import (
	"encoding/binary"
	"net/netip"
	"strings"

	"github.com/henderiw/rangelist/pkg/rangelist"
	"github.com/pkg/errors"
	"go4.org/netipx"
)

type IP4List interface {
	Add(r netipx.IPRange) error
	Remove(r netipx.IPRange) error
	AddPrefix(p netip.Prefix) error
	RemovePrefix(p netip.Prefix) error

	Len() int
	Ranges() []netipx.IPRange
	String() string
}

// New returns an empty set of IPv4 addresses.
func New() IP4List {
	return &ip4List{list: rangelist.New()}
}

type ip4List struct {
	list *rangelist.RangeList
}

func (r *ip4List) Add(ipRange netipx.IPRange) error {
	rg, err := toRange(ipRange)
	if err != nil {
		return err
	}
	return r.list.Add(rg)
}

func (r *ip4List) Remove(ipRange netipx.IPRange) error {
	rg, err := toRange(ipRange)
	if err != nil {
		return err
	}
	return r.list.Remove(rg)
}

func (r *ip4List) AddPrefix(p netip.Prefix) error {
	return r.Add(netipx.RangeOfPrefix(p))
}

func (r *ip4List) RemovePrefix(p netip.Prefix) error {
	return r.Remove(netipx.RangeOfPrefix(p))
}

func (r *ip4List) Len() int {
	return r.list.Len()
}

func (r *ip4List) Ranges() []netipx.IPRange {
	ranges := r.list.Ranges()
	out := make([]netipx.IPRange, 0, len(ranges))
	for _, rg := range ranges {
		out = append(out, fromRange(rg))
	}
	return out
}

// String renders the set as "a.b.c.d-e.f.g.h" items separated by a space.
func (r *ip4List) String() string {
	ranges := r.Ranges()
	items := make([]string, 0, len(ranges))
	for _, ipRange := range ranges {
		items = append(items, ipRange.String())
	}
	return strings.Join(items, " ")
}

// toRange maps the inclusive IPv4 range to [from, to+1).
func toRange(ipRange netipx.IPRange) (rangelist.Range, error) {
	if !ipRange.IsValid() {
		return rangelist.Range{}, errors.Wrapf(rangelist.ErrInvalidArgument, "invalid ip range %q", ipRange.String())
	}
	if !ipRange.From().Is4() {
		return rangelist.Range{}, errors.Wrapf(rangelist.ErrInvalidArgument, "ip range %s is not IPv4", ipRange)
	}
	return rangelist.RangeFrom(
		int64(addrToUint32(ipRange.From())),
		int64(addrToUint32(ipRange.To()))+1,
	), nil
}

func fromRange(rg rangelist.Range) netipx.IPRange {
	return netipx.IPRangeFrom(uint32ToAddr(uint32(rg.Begin)), uint32ToAddr(uint32(rg.End-1)))
}

func addrToUint32(addr netip.Addr) uint32 {
	a4 := addr.As4()
	return binary.BigEndian.Uint32(a4[:])
}

func uint32ToAddr(id uint32) netip.Addr {
	var a4 [4]byte
	binary.BigEndian.PutUint32(a4[:], id)
	return netip.AddrFrom4(a4)
}
