package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamops-io/personnel-cli/pkg/models"
)

func TestDecodeCollectionBareArray(t *testing.T) {
	body := []byte(`[{"id": "1", "name": "Ana", "status": "aprobado"}]`)

	people, err := decodeCollection[models.Person](body)
	require.NoError(t, err)
	require.Len(t, people, 1)
	assert.Equal(t, "Ana", people[0].Name)
}

func TestDecodeCollectionEnvelope(t *testing.T) {
	body := []byte(`{"success": true, "data": [{"id": 2, "name": "Luis", "status": "pendiente"}]}`)

	people, err := decodeCollection[models.Person](body)
	require.NoError(t, err)
	require.Len(t, people, 1)
	assert.Equal(t, models.ID("2"), people[0].ID)
}

func TestDecodeCollectionEnvelopeFailure(t *testing.T) {
	body := []byte(`{"success": false, "error": "database unavailable"}`)

	_, err := decodeCollection[models.Person](body)
	require.Error(t, err)
	assert.EqualError(t, err, "database unavailable")
}

func TestDecodeCollectionPrefersErrorOverMessage(t *testing.T) {
	body := []byte(`{"success": false, "error": "primary detail", "message": "generic detail"}`)

	_, err := decodeCollection[models.Person](body)
	require.Error(t, err)
	assert.EqualError(t, err, "primary detail")
}

func TestDecodeCollectionErrorAlongsideData(t *testing.T) {
	// An error field fails the load even when a payload came with it; rows
	// from a failed source must never surface.
	body := []byte(`{"success": true, "data": [{"id": "1", "name": "Ana"}], "error": "partial load"}`)

	_, err := decodeCollection[models.Person](body)
	require.Error(t, err)
	assert.EqualError(t, err, "partial load")
}

func TestDecodeCollectionEmptyEnvelopeData(t *testing.T) {
	body := []byte(`{"success": true, "data": []}`)

	people, err := decodeCollection[models.Person](body)
	require.NoError(t, err)
	assert.Empty(t, people)
}

func TestDecodeCollectionMalformed(t *testing.T) {
	_, err := decodeCollection[models.Person]([]byte(`[{"id":`))
	assert.Error(t, err)
}

func TestDecodeRecord(t *testing.T) {
	body := []byte(`{"success": true, "data": {"id": "5", "user_id": "1", "user_name": "Ana", "access_type": "GitHub, AWS", "status": "pendiente"}}`)

	req, err := decodeRecord[models.AccessRequest](body)
	require.NoError(t, err)
	assert.Equal(t, models.ID("5"), req.ID)
	assert.Equal(t, []string{"GitHub", "AWS"}, req.AccessTypes())
}

func TestDecodeRecordMissingData(t *testing.T) {
	_, err := decodeRecord[models.AccessRequest]([]byte(`{"success": true}`))
	require.Error(t, err)
	assert.EqualError(t, err, "server returned no record")
}

func TestDecodeRecordNullData(t *testing.T) {
	// data: null means no record, not a zero-valued one; edit flows must see
	// a fetch failure instead of seeding from empty fields.
	_, err := decodeRecord[models.AccessRequest]([]byte(`{"success": true, "data": null}`))
	require.Error(t, err)
	assert.EqualError(t, err, "server returned no record")
}

func TestDecodeRecordErrorAlongsideData(t *testing.T) {
	body := []byte(`{"success": true, "data": {"id": "5"}, "error": "stale record"}`)

	_, err := decodeRecord[models.AccessRequest](body)
	require.Error(t, err)
	assert.EqualError(t, err, "stale record")
}

func TestErrorFromBody(t *testing.T) {
	err := errorFromBody(500, []byte(`{"error": "boom"}`))
	assert.EqualError(t, err, "boom")

	err = errorFromBody(500, []byte(`{"message": "broken"}`))
	assert.EqualError(t, err, "broken")

	err = errorFromBody(502, []byte(`<html>bad gateway</html>`))
	assert.EqualError(t, err, "request failed with status 502")
}
