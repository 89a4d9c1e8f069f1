package server

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 服务配置，来自 YAML 文件，缺省值见 DefaultConfig
type Config struct {
	Addr        string `yaml:"addr"`        // HTTP 监听地址
	LogFile     string `yaml:"logFile"`     // 日志文件路径
	DataAppName string `yaml:"dataAppName"` // gdata 存储的应用名
	Player1Name string `yaml:"player1Name"` // 记入台账的玩家1显示名
	Player2Name string `yaml:"player2Name"` // 记入台账的玩家2显示名
}

// DefaultConfig 返回默认配置
func DefaultConfig() Config {
	return Config{
		Addr:        ":8080",
		LogFile:     "fbx.log",
		DataAppName: "fbx",
		Player1Name: "Player 1",
		Player2Name: "Player 2",
	}
}

// LoadConfig 从 YAML 文件加载配置，文件不存在时使用默认值（不报错）
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal config %s: %w", path, err)
	}
	return cfg, nil
}
