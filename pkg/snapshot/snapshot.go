// Package snapshot compares JSON encodings against files stored in testdata
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

var funcCount = make(map[string]int)

// ValidateSnapshot performs snapshot testing
// Snapshots are named after the calling test and the call count within it. A missing snapshot is
// written out and the check passes; delete the file to regenerate it.
func ValidateSnapshot(t *testing.T, obj interface{}, depth int, msgAndArgs ...interface{}) bool {
	t.Helper()
	skip := 1 + depth

	pc, _, _, _ := runtime.Caller(skip)
	funcName := filepath.Base(runtime.FuncForPC(pc).Name())

	call := funcCount[funcName]
	funcCount[funcName] = call + 1

	filename := filepath.Join("testdata", fmt.Sprintf("%s-%d.json", funcName, call))

	objJSON, err := json.MarshalIndent(obj, "", "  ")
	if !assert.NoError(t, err) {
		return false
	}

	expects, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return assert.NoError(t, create(filename, objJSON))
		}

		return assert.NoError(t, err)
	}

	if !assert.Equal(t, strings.Trim(string(expects), "\n"), strings.Trim(string(objJSON), "\n"), msgAndArgs...) {
		t.Logf("snapshot %s", filename)
		return false
	}

	return true
}

func create(filename string, objJSON []byte) error {
	logrus.WithField("filename", filename).Info("writing snapshot file")
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return err
	}

	return os.WriteFile(filename, append(objJSON, '\n'), 0644)
}
