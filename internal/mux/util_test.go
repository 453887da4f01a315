package mux

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_parsePaginationOptions(t *testing.T) {
	req := func(queryString string) *http.Request {
		req, _ := http.NewRequest(http.MethodGet, "https://example.domain/"+queryString, nil)
		return req
	}

	start, rows, err := parsePaginationOptions(req(""))
	assert.NoError(t, err)
	assert.Equal(t, 0, start)
	assert.Equal(t, defaultRows, rows)

	start, rows, err = parsePaginationOptions(req("?start=10&rows=25"))
	assert.NoError(t, err)
	assert.Equal(t, 10, start)
	assert.Equal(t, 25, rows)

	start, rows, err = parsePaginationOptions(req("?start=-1&rows=25"))
	assert.EqualError(t, err, "start cannot be less than zero")
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, rows)

	start, rows, err = parsePaginationOptions(req("?start=0&rows=0"))
	assert.EqualError(t, err, "rows must be greater than zero")
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, rows)

	start, rows, err = parsePaginationOptions(req(fmt.Sprintf("?start=0&rows=%d", maxRows+1)))
	assert.EqualError(t, err, fmt.Sprintf("rows cannot be greater than %d", maxRows))
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, rows)
}

func Test_writeJSONError(t *testing.T) {
	a := assert.New(t)

	w := httptest.NewRecorder()
	writeJSONError(w, http.StatusBadRequest, errors.New("bad input"))
	a.Equal(http.StatusBadRequest, w.Code)
	a.JSONEq(`{"message":"bad input","statusCode":400}`, w.Body.String())

	w = httptest.NewRecorder()
	writeJSONError(w, http.StatusInternalServerError, errors.New("secret details"))
	a.Equal(http.StatusInternalServerError, w.Code)
	a.JSONEq(`{"message":"Internal Server Error","statusCode":500}`, w.Body.String())

	w = httptest.NewRecorder()
	writeMaybeNotFoundError(w, errors.New("boom"))
	a.Equal(http.StatusInternalServerError, w.Code)
}

func assertDo(t *testing.T, req *http.Request, respObj interface{}, statusCode int) *http.Response {
	t.Helper()

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Error(err)
		return nil
	}
	defer resp.Body.Close()

	if statusCode != resp.StatusCode {
		b, _ := io.ReadAll(resp.Body)
		t.Log(string(b))
		assert.Equal(t, statusCode, resp.StatusCode)
		return nil
	}

	if respObj != nil {
		if err := json.NewDecoder(resp.Body).Decode(respObj); err != nil {
			t.Error(err)
			return nil
		}
	}

	return resp
}

func assertGet(t *testing.T, ts *httptest.Server, path string, respObj interface{}, statusCode int) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	if err != nil {
		t.Error(err)
		return nil
	}

	return assertDo(t, req, respObj, statusCode)
}
