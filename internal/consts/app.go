package consts

const (
	// ApplicationName 应用名称
	ApplicationName = "BIG 3D API Server"
	// ApplicationVersion 后端版本号
	ApplicationVersion = "1.0.0"
)
