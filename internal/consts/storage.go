package consts

const (
	// StorageURLPrefix 对象存储的公开访问路径前缀
	StorageURLPrefix = "/storage/"

	// ProjectObjectPrefix 项目图片对象 key 的前缀，后接项目 ID
	ProjectObjectPrefix = "projects/"

	// LogoObjectPrefix 站点 Logo 对象 key 的前缀
	LogoObjectPrefix = "logo/"

	// LogoTypeNavbar 当前唯一的 Logo 类别
	LogoTypeNavbar = "navbar"
)
