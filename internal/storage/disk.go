package storage

import (
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/111dd/big3d/internal/utils"
)

// DiskStore 本地磁盘对象存储。
// key 形如 "projects/<id>/<uuid>.png"，映射为基目录下的相对路径。
type DiskStore struct {
	root string
}

func NewDiskStore(root string) (*DiskStore, error) {
	if strings.TrimSpace(root) == "" {
		return nil, fmt.Errorf("存储目录不能为空")
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("无法创建存储目录 '%s': %w", root, err)
	}
	return &DiskStore{root: root}, nil
}

func (s *DiskStore) Put(key string, r io.Reader) error {
	dst, err := utils.SecureJoin(s.root, key)
	if err != nil {
		return fmt.Errorf("非法对象 key '%s': %w", key, err)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("无法创建对象目录: %w", err)
	}

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("无法创建对象文件: %w", err)
	}
	defer func() { _ = out.Close() }()

	if _, err := io.Copy(out, r); err != nil {
		// 写入失败时清理半成品文件
		_ = os.Remove(dst)
		return fmt.Errorf("对象写入失败: %w", err)
	}
	return nil
}

func (s *DiskStore) Get(key string) (io.ReadCloser, *ObjectInfo, error) {
	src, err := utils.SecureJoin(s.root, key)
	if err != nil {
		// 非法 key 对外表现为对象不存在
		return nil, nil, ErrNotFound
	}

	f, err := os.Open(src)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("对象读取失败: %w", err)
	}

	stat, err := f.Stat()
	if err != nil || stat.IsDir() {
		_ = f.Close()
		return nil, nil, ErrNotFound
	}

	return f, &ObjectInfo{
		Size:        stat.Size(),
		ContentType: contentTypeByKey(key),
	}, nil
}

// contentTypeByKey 由扩展名推断 Content-Type，未知时回退 octet-stream
func contentTypeByKey(key string) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(key))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
