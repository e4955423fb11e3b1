package config

import (
	"errors"
	"log"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/spf13/viper"
)

// 用于管理应用配置

var (
	// 使用 atomic.Value 存储 *Config，实现无锁读取
	appConfig atomic.Value
	configMu  sync.Mutex // 仅用于写操作互斥
	configDir = "config"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Admin     AdminConfig     `mapstructure:"admin"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Storage   StorageConfig   `mapstructure:"storage"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Port             string `mapstructure:"port"`
	Mode             string `mapstructure:"mode"`
	MaxRequestBodyMB int    `mapstructure:"max_request_body_mb"`
}

type DatabaseConfig struct {
	Type     string `mapstructure:"type"`     // sqlite, mysql, postgres
	Filename string `mapstructure:"filename"` // for sqlite
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"` // database name
	SSL      bool   `mapstructure:"ssl"`  // enable TLS/SSL
}

type AdminConfig struct {
	APIKey string `mapstructure:"api_key"`
}

type CORSConfig struct {
	// AllowedOrigins 逗号分隔的来源白名单，支持 "*" 条目；为空表示全放行
	AllowedOrigins string `mapstructure:"allowed_origins"`
}

type StorageConfig struct {
	Path          string `mapstructure:"path"`
	PublicBaseURL string `mapstructure:"public_base_url"` // 为空时根据请求推导
	CacheControl  string `mapstructure:"cache_control"`
}

type RateLimitConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	AdminRPS    float64 `mapstructure:"admin_rps"`
	AdminBurst  int     `mapstructure:"admin_burst"`
	UploadRPS   float64 `mapstructure:"upload_rps"`
	UploadBurst int     `mapstructure:"upload_burst"`
}

// Origins 解析来源白名单，去除空白条目
func (c CORSConfig) Origins() []string {
	raw := strings.TrimSpace(c.AllowedOrigins)
	if raw == "" {
		return nil
	}
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// Get 获取当前配置的快照（高性能无锁）
func Get() Config {
	val := appConfig.Load()
	if val == nil {
		return Config{}
	}
	c, ok := val.(*Config)
	if !ok {
		return Config{}
	}
	return *c
}

func GetConfigDir() string {
	return configDir
}

func InitConfig(customConfigDir string) {
	v := initViper(customConfigDir)
	loadAndStore(v)
	enforceAdminKeySafety()
	log.Println("✅ 配置加载成功")
}

func initViper(customConfigDir string) *viper.Viper {
	v := viper.New()

	customConfigDir = strings.TrimSpace(customConfigDir)
	if customConfigDir == "" {
		customConfigDir = "config"
	}
	configDir = customConfigDir

	// 设置配置文件路径
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// 设置默认值
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.max_request_body_mb", 2)
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.filename", "database/big3d.db")
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", "3306")
	v.SetDefault("database.user", "root")
	v.SetDefault("database.password", "root")
	v.SetDefault("database.name", "big3d")
	v.SetDefault("database.ssl", false)
	v.SetDefault("admin.api_key", "")
	v.SetDefault("cors.allowed_origins", "")
	v.SetDefault("storage.path", "uploads/objects")
	v.SetDefault("storage.public_base_url", "")
	v.SetDefault("storage.cache_control", "public, max-age=31536000")
	v.SetDefault("rate_limit.enabled", false)
	v.SetDefault("rate_limit.admin_rps", 5)
	v.SetDefault("rate_limit.admin_burst", 10)
	v.SetDefault("rate_limit.upload_rps", 1)
	v.SetDefault("rate_limit.upload_burst", 5)

	// 读取配置文件
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			log.Println("⚠️  未找到配置文件，将仅使用环境变量或默认值")
		} else {
			log.Fatalf("❌ 读取配置文件失败: %v", err)
		}
	}

	// 配置环境变量覆盖
	// 规则：所有环境变量必须以 BIG3D_ 开头
	// 例如：yaml 中的 admin.api_key 对应环境变量 BIG3D_ADMIN_API_KEY
	v.SetEnvPrefix("BIG3D")

	// 允许自动查找环境变量
	v.AutomaticEnv()

	// 解决层级分隔符问题：将 key 中的 "." 替换为 "_"
	// 这样 server.port 才能匹配 SERVER_PORT
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 初始加载配置
	return v
}

// loadAndStore 解析并原子更新配置
func loadAndStore(v *viper.Viper) {
	// 加写锁，防止并发重载时的竞争
	configMu.Lock()
	defer configMu.Unlock()

	var tempConfig Config
	// 将配置映射到结构体
	if err := v.Unmarshal(&tempConfig); err != nil {
		log.Printf("❌ 配置解析失败: %v", err)
		return
	}

	if tempConfig.Server.Mode != "release" && tempConfig.Admin.APIKey == "" {
		log.Println("⚠️ [开发模式警告] 未设置 Admin API Key，管理接口将全部返回 401")
	}

	// 原子替换全局配置
	appConfig.Store(&tempConfig)
	log.Println("✅ 配置已更新")
}

func enforceAdminKeySafety() {
	// 首次启动安全检查：release 模式下必须设置管理密钥
	curr := Get()
	if curr.Server.Mode == "release" && curr.Admin.APIKey == "" {
		log.Fatal("❌ [安全严重错误] 生产模式(release)下必须设置 Admin API Key！\n请设置环境变量 BIG3D_ADMIN_API_KEY 或在配置文件中指定 admin.api_key")
	}
}
