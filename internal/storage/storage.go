package storage

import (
	"errors"
	"io"
)

// ErrNotFound 对象不存在
var ErrNotFound = errors.New("对象不存在")

// ObjectInfo 读取对象时返回的元信息
type ObjectInfo struct {
	Size        int64
	ContentType string
}

// Store 按 key 存取二进制对象的抽象。
// 上传的资源一经写入即视为不可变，不提供覆盖或删除语义。
type Store interface {
	Put(key string, r io.Reader) error
	Get(key string) (io.ReadCloser, *ObjectInfo, error)
}
