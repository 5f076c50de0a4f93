package attribution

import (
	"strconv"
	"strings"
)

// Type classifies where a lead came from.
type Type string

const (
	TypeNone     Type = ""
	TypeReferral Type = "referral"
	TypeBuyer    Type = "buyer"
)

// Attribution is the first-touch source credited for a lead. It is
// resolved once when the session is created and never changes afterwards.
type Attribution struct {
	Type    Type   `gorm:"size:20;column:type" json:"type,omitempty"`
	Value   string `gorm:"size:100;column:value" json:"value,omitempty"`
	ClickID string `gorm:"size:100;column:click_id" json:"click_id,omitempty"`
}

// None reports whether no source was credited.
func (a Attribution) None() bool {
	return a.Type == TypeNone
}

// ReferrerID returns the referring user id for referral attributions.
func (a Attribution) ReferrerID() (int64, bool) {
	if a.Type != TypeReferral {
		return 0, false
	}
	id, err := strconv.ParseInt(a.Value, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// Parse resolves a deep-link start parameter into an attribution.
// Recognized forms:
//
//	ref_<user id>                referral from an existing lead
//	buyer_<code>                 paid-traffic campaign code
//	buyer_<code>__<click id>     same, with ad-network click id appended
//
// Unknown or malformed tokens resolve to none; a referral pointing at the
// entering user itself also resolves to none. Parsing never fails entry.
func Parse(param string, userID int64) Attribution {
	param = strings.TrimSpace(param)
	switch {
	case strings.HasPrefix(param, "ref_"):
		id, err := strconv.ParseInt(param[len("ref_"):], 10, 64)
		if err != nil || id <= 0 || id == userID {
			return Attribution{}
		}
		return Attribution{Type: TypeReferral, Value: strconv.FormatInt(id, 10)}
	case strings.HasPrefix(param, "buyer_"):
		code := param
		clickID := ""
		// the separator may only split after a non-empty code
		if i := strings.Index(param[len("buyer_"):], "__"); i >= 0 {
			if i == 0 {
				return Attribution{}
			}
			cut := len("buyer_") + i
			code, clickID = param[:cut], param[cut+2:]
		}
		if code == "buyer_" {
			return Attribution{}
		}
		return Attribution{Type: TypeBuyer, Value: code, ClickID: clickID}
	default:
		return Attribution{}
	}
}
