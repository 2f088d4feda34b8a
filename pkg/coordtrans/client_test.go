package coordtrans

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func TestTransformBatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transform", r.URL.Path)

		var req batchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Files, 1)
		assert.Equal(t, "sd-1", req.Files[0].SeismicID)
		assert.Equal(t, 71, req.Files[0].ScalarField)
		require.NotNil(t, req.Files[0].SrcYFormat)
		assert.Equal(t, "ieee", *req.Files[0].SrcYFormat)
		assert.Equal(t, 32631, req.SRID)

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"files": [{
				"seismic_id": "sd-1",
				"coordinates": [
					{"latitude": 4.51, "longitude": 8.02},
					{"latitude": 4.52, "longitude": 8.03}
				]
			}]
		}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	res, err := c.TransformBatch(context.Background(), []FileConfig{{
		SeismicID:   "sd-1",
		FilePath:    "/data/in/line42.sgy",
		SrcXField:   intPtr(73),
		SrcYField:   intPtr(77),
		SrcXFormat:  strPtr("int32"),
		SrcYFormat:  strPtr("ieee"),
		ScalarField: 71,
	}}, 32631, "")
	require.NoError(t, err)
	require.Len(t, res.Files, 1)
	assert.Equal(t, "sd-1", res.Files[0].SeismicID)
	require.Len(t, res.Files[0].Coordinates, 2)
	assert.Equal(t, 4.51, res.Files[0].Coordinates[0].Latitude)
}

func TestTransformBatchEmptyConfigsSkipsCall(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	res, err := c.TransformBatch(context.Background(), nil, 0, "")
	require.NoError(t, err)
	assert.Empty(t, res.Files)
	assert.False(t, called)
}

func TestTransformBatchServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"error": {"message": "unknown SRID 99999"}}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.TransformBatch(context.Background(), []FileConfig{{SeismicID: "sd-1"}}, 99999, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown SRID")
}
