package service

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/111dd/big3d/internal/modules/project/repo"
	"github.com/111dd/big3d/internal/storage"
	"github.com/111dd/big3d/internal/testutils"
)

// memStore 内存对象存储，测试用
type memStore struct {
	objects map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{objects: make(map[string][]byte)}
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

func setupService(t *testing.T) (*Service, *memStore) {
	t.Helper()
	store := newMemStore()
	return New(repo.NewProjectRepository(testutils.SetupDB(t)), store), store
}

// makeFileHeader 构造带指定类型与内容的 multipart 文件头
func makeFileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("创建分片失败: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("写入分片失败: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("关闭 writer 失败: %v", err)
	}

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("解析表单失败: %v", err)
	}
	return form.File["file"][0]
}
