package consts

// MaxUploadSize 单个上传文件的大小上限 (10 MiB)
const MaxUploadSize = 10 * 1024 * 1024

// UploadBodyOverhead multipart 表单本身的开销余量，
// 保证恰好等于 MaxUploadSize 的文件仍能完整上传。
const UploadBodyOverhead = 1 * 1024 * 1024

// AllowedImageTypes 允许上传的图片 MIME 类型（按声明的 Content-Type 校验）
var AllowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}
