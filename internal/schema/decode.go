package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/phrazzld/vocab-drill/internal/domain"
)

// Key aliases accepted on input. The first name is the canonical one; the
// others come from the earlier trainer export format.
var (
	keyFront    = []string{"front", "de"}
	keyBack     = []string{"back", "rm"}
	keySchedule = []string{"schedule", "srs"}
	keyForward  = []string{"forward", "de2rm"}
	keyReverse  = []string{"reverse", "rm2de"}
)

// maxEpochMillis bounds numeric timestamps to +-100,000,000 days around the
// epoch, the range other exporters of this format can represent.
const maxEpochMillis = 8.64e15

// Parse reads a document leniently. Values of the wrong type are treated as
// absent rather than rejected. Parse fails only when data is not a JSON object.
func Parse(data []byte) (RawDocument, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return RawDocument{}, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if top == nil {
		return RawDocument{}, fmt.Errorf("%w: document is null", ErrMalformedDocument)
	}

	o := object(top)
	doc := RawDocument{Version: o.integer("version")}

	for _, raw := range o.array("lists") {
		lo := asObject(raw)
		if lo == nil {
			continue
		}
		doc.Lists = append(doc.Lists, RawList{
			ID:        lo.str("id"),
			Name:      lo.str("name"),
			CreatedAt: lo.timestamp("createdAt"),
		})
	}

	for _, raw := range o.array("pairs") {
		po := asObject(raw)
		if po == nil {
			continue
		}
		doc.Pairs = append(doc.Pairs, RawPair{
			ID:        po.str("id"),
			ListID:    po.str("listId"),
			Front:     po.str(keyFront...),
			Back:      po.str(keyBack...),
			CreatedAt: po.timestamp("createdAt"),
			Shape:     classify(po),
		})
	}

	return doc, nil
}

// classify decides which of the three schedule shapes a pair carries.
func classify(po object) PairShape {
	if container := po.object(keySchedule...); container != nil {
		fwd := container.object(keyForward...)
		rev := container.object(keyReverse...)
		if fwd != nil || rev != nil {
			return CanonicalPair{Forward: fwd.recordFields(), Reverse: rev.recordFields()}
		}
	}

	if flat := po.recordFields(); flat != nil && !flat.Empty() {
		return LegacyFlatPair{Fields: *flat}
	}

	return EmptyPair{}
}

type object map[string]json.RawMessage

func asObject(raw json.RawMessage) object {
	if kind(raw) != '{' {
		return nil
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}
	return m
}

// kind returns the first significant byte of a JSON value, or 0.
func kind(raw json.RawMessage) byte {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}

// lookup returns the first key that is present and not null.
func (o object) lookup(keys ...string) (json.RawMessage, bool) {
	for _, k := range keys {
		raw, ok := o[k]
		if ok && kind(raw) != 0 && kind(raw) != 'n' {
			return raw, true
		}
	}
	return nil, false
}

func (o object) object(keys ...string) object {
	raw, ok := o.lookup(keys...)
	if !ok {
		return nil
	}
	return asObject(raw)
}

func (o object) array(keys ...string) []json.RawMessage {
	raw, ok := o.lookup(keys...)
	if !ok || kind(raw) != '[' {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	return items
}

// str accepts strings and numbers (rendered as written).
func (o object) str(keys ...string) *string {
	raw, ok := o.lookup(keys...)
	if !ok {
		return nil
	}
	switch kind(raw) {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil
		}
		return &s
	case '{', '[', 't', 'f':
		return nil
	default:
		s := string(bytes.TrimSpace(raw))
		return &s
	}
}

// number accepts JSON numbers and numeric strings.
func (o object) number(keys ...string) *float64 {
	raw, ok := o.lookup(keys...)
	if !ok {
		return nil
	}
	var f float64
	switch kind(raw) {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil
		}
		f = parsed
	case '{', '[', 't', 'f':
		return nil
	default:
		if err := json.Unmarshal(raw, &f); err != nil {
			return nil
		}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

func (o object) integer(keys ...string) *int {
	f := o.number(keys...)
	if f == nil {
		return nil
	}
	if *f > math.MaxInt32 || *f < math.MinInt32 {
		return nil
	}
	i := int(math.Round(*f))
	return &i
}

// timestamp accepts epoch milliseconds (number or numeric string) and RFC 3339
// strings. Numbers outside maxEpochMillis count as absent.
func (o object) timestamp(keys ...string) *time.Time {
	if ms := o.number(keys...); ms != nil {
		if math.Abs(*ms) > maxEpochMillis {
			return nil
		}
		t := time.UnixMilli(int64(math.Round(*ms))).UTC()
		return &t
	}
	s := o.str(keys...)
	if s == nil {
		return nil
	}
	parsed, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(*s))
	if err != nil {
		return nil
	}
	t := domain.Timestamp(parsed)
	return &t
}

func (o object) result(keys ...string) *domain.ReviewResult {
	s := o.str(keys...)
	if s == nil {
		return nil
	}
	r := domain.ParseReviewResult(*s)
	if r == domain.ResultNone {
		return nil
	}
	return &r
}

// recordFields reads the seven scheduling fields from o. A nil object yields nil.
func (o object) recordFields() *RecordFields {
	if o == nil {
		return nil
	}
	return &RecordFields{
		Ease:         o.number("ease"),
		Repetitions:  o.integer("repetitions"),
		IntervalDays: o.number("intervalDays"),
		Due:          o.timestamp("due"),
		WrongCount:   o.integer("wrongCount"),
		LastResult:   o.result("lastResult"),
		LastReviewed: o.timestamp("lastReviewed"),
	}
}
