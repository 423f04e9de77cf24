package schema

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/vocab-drill/internal/domain"
	"github.com/phrazzld/vocab-drill/internal/domain/srs"
)

var testNow = time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

func mustDecode(t *testing.T, data string) *domain.Document {
	t.Helper()
	doc, err := Decode([]byte(data), testNow)
	require.NoError(t, err)
	return doc
}

func TestParseRejectsMalformedInput(t *testing.T) {
	t.Parallel()

	inputs := map[string]string{
		"empty":      "",
		"garbage":    "lists: none",
		"null":       "null",
		"array":      "[1, 2]",
		"number":     "42",
		"string":     `"document"`,
		"truncated":  `{"lists": [`,
		"whitespace": "   ",
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(input))
			assert.ErrorIs(t, err, ErrMalformedDocument)
		})
	}
}

func TestParseClassifiesPairShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		pair  string
		check func(t *testing.T, shape PairShape)
	}{
		{
			name: "canonical with both directions",
			pair: `{"schedule": {"forward": {"ease": 2.1}, "reverse": {"ease": 2.2}}}`,
			check: func(t *testing.T, shape PairShape) {
				c, ok := shape.(CanonicalPair)
				require.True(t, ok)
				require.NotNil(t, c.Forward)
				require.NotNil(t, c.Reverse)
				assert.Equal(t, 2.1, *c.Forward.Ease)
				assert.Equal(t, 2.2, *c.Reverse.Ease)
			},
		},
		{
			name: "canonical with legacy key aliases",
			pair: `{"srs": {"de2rm": {"repetitions": 2}}}`,
			check: func(t *testing.T, shape PairShape) {
				c, ok := shape.(CanonicalPair)
				require.True(t, ok)
				require.NotNil(t, c.Forward)
				assert.Nil(t, c.Reverse)
				assert.Equal(t, 2, *c.Forward.Repetitions)
			},
		},
		{
			name: "legacy flat fields",
			pair: `{"ease": 1.9, "wrongCount": 4}`,
			check: func(t *testing.T, shape PairShape) {
				l, ok := shape.(LegacyFlatPair)
				require.True(t, ok)
				assert.Equal(t, 1.9, *l.Fields.Ease)
				assert.Equal(t, 4, *l.Fields.WrongCount)
			},
		},
		{
			name: "container without directions falls back to flat fields",
			pair: `{"schedule": {}, "intervalDays": 3}`,
			check: func(t *testing.T, shape PairShape) {
				_, ok := shape.(LegacyFlatPair)
				assert.True(t, ok)
			},
		},
		{
			name: "nothing at all",
			pair: `{"front": "a", "back": "b"}`,
			check: func(t *testing.T, shape PairShape) {
				assert.Equal(t, EmptyPair{}, shape)
			},
		},
		{
			name: "null fields do not count",
			pair: `{"ease": null, "lastResult": null, "schedule": null}`,
			check: func(t *testing.T, shape PairShape) {
				assert.Equal(t, EmptyPair{}, shape)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			raw, err := Parse([]byte(`{"pairs": [` + tc.pair + `]}`))
			require.NoError(t, err)
			require.Len(t, raw.Pairs, 1)
			tc.check(t, raw.Pairs[0].Shape)
		})
	}
}

func TestParseAcceptsTimestampForms(t *testing.T) {
	t.Parallel()

	want := time.UnixMilli(1700000000000).UTC()
	for _, due := range []string{`1700000000000`, `"1700000000000"`, `"2023-11-14T22:13:20Z"`, `"2023-11-15T00:13:20+02:00"`} {
		raw, err := Parse([]byte(`{"pairs": [{"due": ` + due + `}]}`))
		require.NoError(t, err, due)
		shape, ok := raw.Pairs[0].Shape.(LegacyFlatPair)
		require.True(t, ok, due)
		require.NotNil(t, shape.Fields.Due, due)
		assert.True(t, want.Equal(*shape.Fields.Due), due)
	}
}

func TestParseTreatsOutOfRangeNumbersAsAbsent(t *testing.T) {
	t.Parallel()

	raw, err := Parse([]byte(`{"pairs": [
		{"ease": 2.2, "due": 1e300, "lastReviewed": -1e300, "repetitions": 1e300, "wrongCount": -1e20},
		{"due": 8640000000000000}
	]}`))
	require.NoError(t, err)

	shape, ok := raw.Pairs[0].Shape.(LegacyFlatPair)
	require.True(t, ok)
	require.NotNil(t, shape.Fields.Ease)
	assert.Nil(t, shape.Fields.Due)
	assert.Nil(t, shape.Fields.LastReviewed)
	assert.Nil(t, shape.Fields.Repetitions)
	assert.Nil(t, shape.Fields.WrongCount)

	edge, ok := raw.Pairs[1].Shape.(LegacyFlatPair)
	require.True(t, ok)
	require.NotNil(t, edge.Fields.Due, "the boundary itself is accepted")
	assert.Equal(t, int64(8640000000000000), edge.Fields.Due.UnixMilli())
}

func TestNormalizeMigratesLegacyFlatPair(t *testing.T) {
	t.Parallel()

	doc := mustDecode(t, `{
		"lists": [{"id": "l1", "name": "Animals", "createdAt": 1690000000000}],
		"pairs": [{
			"id": "p1", "listId": "l1", "de": " Hund ", "rm": "chaun ",
			"ease": 2.1, "repetitions": 3, "intervalDays": 8,
			"due": 1700000000000, "wrongCount": 2,
			"lastResult": "wrong", "lastReviewed": 1699990000000
		}]
	}`)

	require.Len(t, doc.Pairs, 1)
	pair := doc.Pairs[0]
	assert.Equal(t, "Hund", pair.Front)
	assert.Equal(t, "chaun", pair.Back)
	assert.Equal(t, testNow, pair.CreatedAt)

	assert.Equal(t, srs.Initialize(testNow), pair.Schedule.Forward)

	rev := pair.Schedule.Reverse
	assert.Equal(t, 2.1, rev.Ease)
	assert.Equal(t, 3, rev.Repetitions)
	assert.Equal(t, 8.0, rev.IntervalDays)
	assert.Equal(t, time.UnixMilli(1700000000000).UTC(), rev.Due)
	assert.Equal(t, 2, rev.WrongCount)
	assert.Equal(t, domain.ResultWrong, rev.LastResult)
	require.NotNil(t, rev.LastReviewed)
	assert.Equal(t, time.UnixMilli(1699990000000).UTC(), *rev.LastReviewed)
}

func TestNormalizeCompletesPartialCanonicalPair(t *testing.T) {
	t.Parallel()

	doc := mustDecode(t, `{
		"lists": [{"id": "l1", "name": "Animals"}],
		"pairs": [{"id": "p1", "listId": "l1", "front": "a", "back": "b",
			"schedule": {"reverse": {"ease": 2.0, "due": 1700000000000}}}]
	}`)

	pair := doc.Pairs[0]
	assert.Equal(t, srs.Initialize(testNow), pair.Schedule.Forward)
	assert.Equal(t, 2.0, pair.Schedule.Reverse.Ease)
	assert.Equal(t, 0, pair.Schedule.Reverse.Repetitions)
	assert.Equal(t, time.UnixMilli(1700000000000).UTC(), pair.Schedule.Reverse.Due)
	assert.Nil(t, pair.Schedule.Reverse.LastReviewed)
}

func TestNormalizeRepairsSloppyDocument(t *testing.T) {
	t.Parallel()

	doc := mustDecode(t, `{
		"version": 1,
		"pairs": [
			{"listId": "missing", "front": "  Katze ", "back": "giat",
			 "ease": 9, "repetitions": -4, "intervalDays": -2, "wrongCount": -1},
			{"id": "dup", "front": "x", "back": "y"},
			{"id": "dup", "front": "z", "back": "w"},
			"not a pair"
		]
	}`)

	assert.Equal(t, domain.CurrentVersion, doc.Version)
	require.Len(t, doc.Lists, 1)
	assert.Equal(t, domain.DefaultListName, doc.Lists[0].Name)
	assert.NotEmpty(t, doc.Lists[0].ID)

	require.Len(t, doc.Pairs, 3)
	first := doc.Pairs[0]
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, doc.Lists[0].ID, first.ListID)
	assert.Equal(t, "Katze", first.Front)
	assert.Equal(t, 3.0, first.Schedule.Reverse.Ease)
	assert.Equal(t, 0, first.Schedule.Reverse.Repetitions)
	assert.Equal(t, 0.0, first.Schedule.Reverse.IntervalDays)
	assert.Equal(t, 0, first.Schedule.Reverse.WrongCount)

	assert.Equal(t, "dup", doc.Pairs[1].ID)
	assert.NotEqual(t, "dup", doc.Pairs[2].ID)
	assert.NotEqual(t, first.ID, doc.Pairs[2].ID)
}

func TestNormalizeListRepairs(t *testing.T) {
	t.Parallel()

	doc := mustDecode(t, `{
		"lists": [
			{"id": "a", "name": "  First  "},
			{"id": "a", "name": "Shadow"},
			{"name": ""}
		],
		"pairs": []
	}`)

	require.Len(t, doc.Lists, 2)
	assert.Equal(t, "First", doc.Lists[0].Name)
	assert.Equal(t, testNow, doc.Lists[0].CreatedAt)
	assert.NotEmpty(t, doc.Lists[1].ID)
	assert.Equal(t, untitledListName, doc.Lists[1].Name)
	assert.Empty(t, doc.Pairs)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		`{}`,
		`{"pairs": [{"de": "a", "rm": "b", "ease": 1.0}]}`,
		`{"lists": [{"id": "l"}], "pairs": [{"listId": "l", "schedule": {"forward": {"ease": 2.2}}}]}`,
		`{"lists": [{"id": "l", "name": "n", "createdAt": 5}], "pairs": [{"id": "p", "listId": "l",
		  "srs": {"rm2de": {"lastResult": "right", "lastReviewed": 1000, "repetitions": 2}}}]}`,
	}

	later := testNow.Add(72 * time.Hour)
	for _, input := range inputs {
		first := mustDecode(t, input)
		second := Normalize(Lift(first), later)
		assert.Equal(t, first, second, input)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	doc := domain.NewDocument(testNow)
	pair, err := domain.NewLearningPair(doc.Lists[0].ID, "Baum", "planta", testNow)
	require.NoError(t, err)
	pair.Schedule.Forward = srs.Review(srs.Initialize(testNow), true, testNow)
	pair.Schedule.Reverse = srs.Review(srs.Initialize(testNow), false, testNow)
	doc.Pairs = append(doc.Pairs, *pair)

	data, err := Encode(doc)
	require.NoError(t, err)

	decoded, err := Decode(data, testNow.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, doc, decoded)
}

func TestImportedHugeIntervalStaysEncodable(t *testing.T) {
	t.Parallel()

	doc := mustDecode(t, `{"pairs": [{"front": "Berg", "back": "muntogna",
		"schedule": {"forward": {"repetitions": 5, "intervalDays": 1e308}}}]}`)
	require.Len(t, doc.Pairs, 1)
	maxInterval := srs.NewDefaultParams().MaxInterval
	assert.Equal(t, maxInterval, doc.Pairs[0].Schedule.Forward.IntervalDays)

	graded := srs.Review(doc.Pairs[0].Schedule.Forward, true, testNow)
	assert.Equal(t, maxInterval, graded.IntervalDays)
	assert.True(t, graded.Due.After(testNow))
	doc.Pairs[0].Schedule.Forward = graded

	data, err := Encode(doc)
	require.NoError(t, err)

	decoded, err := Decode(data, testNow)
	require.NoError(t, err)
	assert.Equal(t, graded, decoded.Pairs[0].Schedule.Forward)
}

func TestLongCorrectRunEncodes(t *testing.T) {
	t.Parallel()

	doc := domain.NewDocument(testNow)
	pair, err := domain.NewLearningPair(doc.Lists[0].ID, "Fluss", "flum", testNow)
	require.NoError(t, err)
	pair.Schedule.Forward = srs.Initialize(testNow)
	pair.Schedule.Reverse = srs.Initialize(testNow)
	doc.Pairs = append(doc.Pairs, *pair)

	for i := 1; i <= 25; i++ {
		rec := srs.Review(doc.Pairs[0].Schedule.Forward, true, testNow)
		require.GreaterOrEqual(t, rec.IntervalDays, 0.0, "review %d", i)
		require.True(t, rec.Due.After(testNow), "review %d: due %v", i, rec.Due)
		doc.Pairs[0].Schedule.Forward = rec

		data, err := Encode(doc)
		require.NoError(t, err, "review %d", i)
		decoded, err := Decode(data, testNow)
		require.NoError(t, err, "review %d", i)
		require.Equal(t, rec, decoded.Pairs[0].Schedule.Forward, "review %d", i)
	}
}

func TestEncodeWireFormat(t *testing.T) {
	t.Parallel()

	doc := domain.NewDocument(testNow)
	pair, err := domain.NewLearningPair(doc.Lists[0].ID, "Haus", "chasa", testNow)
	require.NoError(t, err)
	pair.Schedule.Forward = srs.Initialize(testNow)
	pair.Schedule.Reverse = srs.Review(srs.Initialize(testNow), true, testNow)
	doc.Pairs = append(doc.Pairs, *pair)

	data, err := Encode(doc)
	require.NoError(t, err)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(data, &wire))
	assert.Equal(t, float64(domain.CurrentVersion), wire["version"])

	pairs := wire["pairs"].([]any)
	p := pairs[0].(map[string]any)
	assert.Equal(t, "Haus", p["front"])
	assert.Equal(t, float64(testNow.UnixMilli()), p["createdAt"])

	schedule := p["schedule"].(map[string]any)
	fwd := schedule["forward"].(map[string]any)
	rev := schedule["reverse"].(map[string]any)
	assert.Nil(t, fwd["lastResult"])
	assert.Nil(t, fwd["lastReviewed"])
	assert.Contains(t, fwd, "lastReviewed")
	assert.Equal(t, "right", rev["lastResult"])
	assert.Equal(t, float64(testNow.UnixMilli()), rev["lastReviewed"])
	assert.Equal(t, float64(testNow.Add(24*time.Hour).UnixMilli()), rev["due"])
}

func TestEnsureSchedule(t *testing.T) {
	t.Parallel()

	pair := domain.LearningPair{ID: "p", ListID: "l", Front: "a", Back: "b"}
	pair.Schedule.Reverse.Ease = 0.4
	pair.Schedule.Reverse.Repetitions = -1
	pair.Schedule.Reverse.Due = testNow.Add(-time.Hour)

	EnsureSchedule(&pair, testNow)

	assert.Equal(t, srs.Initialize(testNow), pair.Schedule.Forward)
	assert.Equal(t, 1.3, pair.Schedule.Reverse.Ease)
	assert.Equal(t, 0, pair.Schedule.Reverse.Repetitions)
	assert.Equal(t, testNow.Add(-time.Hour), pair.Schedule.Reverse.Due)
}

func TestMigratePairWithoutShape(t *testing.T) {
	t.Parallel()

	pair := MigratePair(RawPair{ID: ptr("p"), Front: ptr("a")}, testNow)
	assert.Equal(t, "p", pair.ID)
	assert.Equal(t, "a", pair.Front)
	assert.Equal(t, "", pair.Back)
	assert.Equal(t, srs.Initialize(testNow), pair.Schedule.Reverse)
}
