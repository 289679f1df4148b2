package ip4list

import (
	"errors"
	"net/netip"
	"testing"

	"github.com/henderiw/rangelist/pkg/rangelist"
	"github.com/tj/assert"
	"go4.org/netipx"
)

func TestAddRemove(t *testing.T) {
	cases := map[string]struct {
		add      []string
		remove   []string
		expected string
		len      int
	}{
		"Merge": {
			add:      []string{"10.0.0.10-10.0.0.20", "10.0.0.21-10.0.0.30"},
			expected: "10.0.0.10-10.0.0.30",
			len:      1,
		},
		"Split": {
			add:      []string{"10.0.0.0-10.0.0.255"},
			remove:   []string{"10.0.0.100-10.0.0.199"},
			expected: "10.0.0.0-10.0.0.99 10.0.0.200-10.0.0.255",
			len:      2,
		},
		"SingleAddress": {
			add:      []string{"192.168.1.1-192.168.1.1", "192.168.1.3-192.168.1.3"},
			remove:   []string{"192.168.1.3-192.168.1.3"},
			expected: "192.168.1.1-192.168.1.1",
			len:      1,
		},
		"TopOfSpace": {
			add:      []string{"255.255.255.0-255.255.255.255"},
			remove:   []string{"255.255.255.128-255.255.255.255"},
			expected: "255.255.255.0-255.255.255.127",
			len:      1,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r := New()
			for _, s := range tc.add {
				ipRange, err := netipx.ParseIPRange(s)
				assert.NoError(t, err)
				assert.NoError(t, r.Add(ipRange))
			}
			for _, s := range tc.remove {
				ipRange, err := netipx.ParseIPRange(s)
				assert.NoError(t, err)
				assert.NoError(t, r.Remove(ipRange))
			}
			assert.Equal(t, tc.expected, r.String())
			assert.Equal(t, tc.len, r.Len())
		})
	}
}

func TestPrefix(t *testing.T) {
	r := New()
	assert.NoError(t, r.AddPrefix(netip.MustParsePrefix("10.0.0.0/24")))
	assert.NoError(t, r.RemovePrefix(netip.MustParsePrefix("10.0.0.128/25")))
	assert.Equal(t, []netipx.IPRange{
		netipx.IPRangeFrom(netip.MustParseAddr("10.0.0.0"), netip.MustParseAddr("10.0.0.127")),
	}, r.Ranges())
}

func TestInvalid(t *testing.T) {
	r := New()
	ipv6, err := netipx.ParseIPRange("2001:db8::1-2001:db8::10")
	assert.NoError(t, err)
	assert.True(t, errors.Is(r.Add(ipv6), rangelist.ErrInvalidArgument))
	assert.True(t, errors.Is(r.Remove(netipx.IPRange{}), rangelist.ErrInvalidArgument))
	assert.Equal(t, 0, r.Len())
}
