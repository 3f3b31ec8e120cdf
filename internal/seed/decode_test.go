package seed

import (
	"bytes"
	"compress/gzip"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gzipLines compresses lines joined by newlines.
func gzipLines(t *testing.T, lines ...string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(strings.Join(lines, "\n")))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return &buf
}

func TestDecode_Success(t *testing.T) {
	buf := gzipLines(t,
		`{"kind":"category","name":"Starters","description":"Small plates"}`,
		``,
		`{"kind":"product","name":"Samosa","category":"Starters","price":2.5}`,
		`   `,
		`{"kind":"user","name":"Asha","email":"asha@example.com","mobile":"999"}`,
		`{"kind":"product","name":"Pakora","category":"Starters","price":3,"status":"inactive"}`,
	)

	ds, err := Decode(context.Background(), buf)

	require.NoError(t, err)
	assert.Equal(t, 4, ds.Size())
	assert.Equal(t, []CategoryRecord{{Name: "Starters", Description: "Small plates"}}, ds.Categories)
	require.Len(t, ds.Products, 2)
	assert.Equal(t, "Samosa", ds.Products[0].Name)
	assert.Equal(t, 2.5, ds.Products[0].Price)
	assert.Equal(t, "inactive", ds.Products[1].Status)
	assert.Equal(t, []UserRecord{{Name: "Asha", Email: "asha@example.com", Mobile: "999"}}, ds.Users)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name        string
		lines       []string
		errContains string
	}{
		{
			name:        "Unknown kind",
			lines:       []string{`{"kind":"coupon","code":"X"}`},
			errContains: `line 1: unknown record kind "coupon"`,
		},
		{
			name:        "Malformed JSON",
			lines:       []string{`{"kind":"category","name":"A"}`, `{"kind":`},
			errContains: "line 2: invalid JSON",
		},
		{
			name:        "Product without category",
			lines:       []string{`{"kind":"product","name":"Samosa","price":1}`},
			errContains: "product name and category are required",
		},
		{
			name:        "User without email",
			lines:       []string{`{"kind":"user","name":"Asha"}`},
			errContains: "user name and email are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(context.Background(), gzipLines(t, tt.lines...))

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestDecode_NotGzipped(t *testing.T) {
	_, err := Decode(context.Background(), strings.NewReader(`{"kind":"category","name":"A"}`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "gzip")
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	in := &Dataset{
		Categories: []CategoryRecord{{Name: "Mains", Description: "Big plates"}},
		Products:   []ProductRecord{{Name: "Thali", Category: "Mains", Price: 9.75, Status: "active"}},
		Users:      []UserRecord{{Name: "Ravi", Email: "ravi@example.com"}},
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, in))

	out, err := Decode(context.Background(), &buf)

	require.NoError(t, err)
	assert.Equal(t, in, out)
}
