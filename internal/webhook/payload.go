package webhook

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"shopify-sms-notifier/internal/domain"
)

// Payload is the decoded JSON tree of a verified webhook body.
type Payload map[string]any

// ParsePayload decodes a raw webhook body. Decode is only attempted after
// signature verification has passed, so a failure here means the upstream
// sent something inconsistent, not that a client tampered.
func ParsePayload(raw []byte) (Payload, error) {
	var p Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	return p, nil
}

// phonePaths is the fixed candidate list for locating the customer's
// number. Order matters: earlier paths win over later ones.
var phonePaths = []string{
	"customer.phone",
	"order.customer.phone",
	"checkout.billing_address.phone",
	"billing_address.phone",
	"shipping_address.phone",
}

// ExtractPhone walks the candidate paths and returns the first value that
// exists and validates as a phone number. Missing intermediate keys are
// treated as "path not found", never an error.
func ExtractPhone(p Payload) (domain.Phone, bool) {
	for _, path := range phonePaths {
		raw, ok := p.lookup(path)
		if !ok {
			continue
		}
		s, ok := raw.(string)
		if !ok || s == "" {
			continue
		}
		if phone, ok := domain.ParsePhone(s); ok {
			return phone, true
		}
	}
	return "", false
}

// lookup resolves a dotted path against the tree.
func (p Payload) lookup(path string) (any, bool) {
	var cur any = map[string]any(p)
	for _, seg := range strings.Split(path, ".") {
		node, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = node[seg]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// stringAt returns the first path that resolves to a non-empty scalar,
// rendered as a string. Shopify sends order numbers as JSON numbers, so
// float64 values are accepted too.
func (p Payload) stringAt(paths ...string) (string, bool) {
	for _, path := range paths {
		v, ok := p.lookup(path)
		if !ok {
			continue
		}
		switch s := v.(type) {
		case string:
			if s != "" {
				return s, true
			}
		case float64:
			return strconv.FormatFloat(s, 'f', -1, 64), true
		}
	}
	return "", false
}
