package handler

import (
	"bytes"
	"io"
	"testing"

	"github.com/111dd/big3d/internal/modules/project/repo"
	"github.com/111dd/big3d/internal/modules/project/service"
	"github.com/111dd/big3d/internal/storage"
	"github.com/111dd/big3d/internal/testutils"
)

var testHandler *ProjectHandler

// memStore 内存对象存储，测试用
type memStore struct {
	objects map[string][]byte
}

func (m *memStore) Put(key string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.objects[key] = data
	return nil
}

func (m *memStore) Get(key string) (io.ReadCloser, *storage.ObjectInfo, error) {
	data, ok := m.objects[key]
	if !ok {
		return nil, nil, storage.ErrNotFound
	}
	info := &storage.ObjectInfo{Size: int64(len(data)), ContentType: "application/octet-stream"}
	return io.NopCloser(bytes.NewReader(data)), info, nil
}

func setupTestHandler(t *testing.T) {
	t.Helper()
	projectStore := repo.NewProjectRepository(testutils.SetupDB(t))
	objectStore := &memStore{objects: make(map[string][]byte)}
	testHandler = New(service.New(projectStore, objectStore))
}
