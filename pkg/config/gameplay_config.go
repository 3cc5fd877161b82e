package config

import (
	"fmt"

	"github.com/decker502/invaders/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// GameplayConfigPath 默认玩法配置文件路径（嵌入资源）
const GameplayConfigPath = "data/gameplay.yaml"

// WindowConfig 窗口与逻辑分辨率
type WindowConfig struct {
	Width  int    `yaml:"width"`  // 逻辑屏幕宽度（像素）
	Height int    `yaml:"height"` // 逻辑屏幕高度（像素）
	Title  string `yaml:"title"`  // 窗口标题
}

// ProjectileConfig 子弹参数
type ProjectileConfig struct {
	Speed    float64 `yaml:"speed"`    // 飞行速度（像素/秒）
	Lifetime float64 `yaml:"lifetime"` // 最长存活时间（秒）
	Damage   int     `yaml:"damage"`   // 命中伤害
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
}

// ShooterConfig 射击参数
type ShooterConfig struct {
	MinInterval      float64          `yaml:"minInterval"`      // 最短开火间隔（秒）
	MaxInterval      float64          `yaml:"maxInterval"`      // 最长开火间隔（秒）
	ShootImmediately bool             `yaml:"shootImmediately"` // 首发是否立即开火
	Projectile       ProjectileConfig `yaml:"projectile"`
}

// PlayerConfig 玩家参数
type PlayerConfig struct {
	Speed    float64       `yaml:"speed"`    // 水平移动速度（像素/秒）
	MaxLives int           `yaml:"maxLives"` // 最大生命数
	Width    float64       `yaml:"width"`
	Height   float64       `yaml:"height"`
	OffsetY  float64       `yaml:"offsetY"` // 距屏幕底部的距离（像素）
	Shooter  ShooterConfig `yaml:"shooter"`
}

// EnemyConfig 敌人参数
type EnemyConfig struct {
	MaxHealth  int           `yaml:"maxHealth"`
	ScoreValue int           `yaml:"scoreValue"` // 消灭奖励分数
	Width      float64       `yaml:"width"`
	Height     float64       `yaml:"height"`
	Shooter    ShooterConfig `yaml:"shooter"`
}

// FormationConfig 编队移动参数
type FormationConfig struct {
	Speed          float64 `yaml:"speed"`          // 水平速度（像素/秒）
	DropDistance   float64 `yaml:"dropDistance"`   // 碰到边界后的下移距离（像素）
	CooldownFrames int     `yaml:"cooldownFrames"` // 边界碰撞冷却 tick 数
	SpacingX       float64 `yaml:"spacingX"`       // 成员列间距（像素）
	SpacingY       float64 `yaml:"spacingY"`       // 成员行间距（像素）
	OriginY        float64 `yaml:"originY"`        // 第一行中心的初始Y坐标
}

// ShieldConfig 护盾参数
type ShieldConfig struct {
	MaxHealth int     `yaml:"maxHealth"`
	Count     int     `yaml:"count"` // 护盾数量（横向均匀分布）
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	OffsetY   float64 `yaml:"offsetY"` // 距屏幕底部的距离（像素）
}

// LevelConfig 单个关卡
type LevelConfig struct {
	Name            string  `yaml:"name"`
	Rows            int     `yaml:"rows"`
	Cols            int     `yaml:"cols"`
	SpeedMultiplier float64 `yaml:"speedMultiplier"` // 编队速度倍率，0 视为 1
	EnemyHealth     int     `yaml:"enemyHealth"`     // 覆盖敌人生命值，0 表示使用默认
}

// GameplayConfig 玩法配置文件结构
type GameplayConfig struct {
	Window    WindowConfig    `yaml:"window"`
	Player    PlayerConfig    `yaml:"player"`
	Enemy     EnemyConfig     `yaml:"enemy"`
	Formation FormationConfig `yaml:"formation"`
	Shield    ShieldConfig    `yaml:"shield"`
	Levels    []LevelConfig   `yaml:"levels"`
}

// LoadGameplayConfig 从嵌入资源加载玩法配置
// 参数：
//
//	filepath - 配置文件路径（必须以 data/ 开头）
//
// 返回：
//
//	*GameplayConfig - 解析并校验后的配置
//	error - 读取、解析或校验失败时返回
func LoadGameplayConfig(filepath string) (*GameplayConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read gameplay config %s: %w", filepath, err)
	}

	cfg, err := ParseGameplayConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid gameplay config %s: %w", filepath, err)
	}
	return cfg, nil
}

// ParseGameplayConfig 解析 YAML 数据并校验
func ParseGameplayConfig(data []byte) (*GameplayConfig, error) {
	var cfg GameplayConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse gameplay YAML: %w", err)
	}

	if err := validateGameplayConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validateGameplayConfig 校验配置的完整性和合法性
func validateGameplayConfig(cfg *GameplayConfig) error {
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}

	if cfg.Player.MaxLives < 1 {
		return fmt.Errorf("player maxLives must be at least 1, got %d", cfg.Player.MaxLives)
	}
	if cfg.Player.Speed < 0 {
		return fmt.Errorf("player speed cannot be negative, got %v", cfg.Player.Speed)
	}
	if err := validateShooter("player", cfg.Player.Shooter); err != nil {
		return err
	}

	if cfg.Enemy.MaxHealth < 1 {
		return fmt.Errorf("enemy maxHealth must be at least 1, got %d", cfg.Enemy.MaxHealth)
	}
	if cfg.Enemy.ScoreValue < 0 {
		return fmt.Errorf("enemy scoreValue cannot be negative, got %d", cfg.Enemy.ScoreValue)
	}
	if err := validateShooter("enemy", cfg.Enemy.Shooter); err != nil {
		return err
	}

	// 冷却为 0 时同一 tick 内的多次边界碰撞会各自生效
	if cfg.Formation.CooldownFrames < 1 {
		return fmt.Errorf("formation cooldownFrames must be at least 1, got %d", cfg.Formation.CooldownFrames)
	}
	if cfg.Formation.DropDistance < 0 {
		return fmt.Errorf("formation dropDistance cannot be negative, got %v", cfg.Formation.DropDistance)
	}

	if cfg.Shield.Count > 0 && cfg.Shield.MaxHealth < 1 {
		return fmt.Errorf("shield maxHealth must be at least 1, got %d", cfg.Shield.MaxHealth)
	}

	if len(cfg.Levels) == 0 {
		return fmt.Errorf("at least one level is required")
	}
	for i, level := range cfg.Levels {
		if level.Rows < 1 || level.Cols < 1 {
			return fmt.Errorf("level %d (%s): rows and cols must be at least 1, got %dx%d", i+1, level.Name, level.Rows, level.Cols)
		}
		if level.SpeedMultiplier < 0 {
			return fmt.Errorf("level %d (%s): speedMultiplier cannot be negative", i+1, level.Name)
		}
		if level.EnemyHealth < 0 {
			return fmt.Errorf("level %d (%s): enemyHealth cannot be negative", i+1, level.Name)
		}
	}

	return nil
}

func validateShooter(owner string, s ShooterConfig) error {
	if s.MinInterval < 0 || s.MaxInterval < s.MinInterval {
		return fmt.Errorf("%s shooter: invalid fire interval [%v, %v]", owner, s.MinInterval, s.MaxInterval)
	}
	if s.Projectile.Speed <= 0 {
		return fmt.Errorf("%s shooter: projectile speed must be positive, got %v", owner, s.Projectile.Speed)
	}
	if s.Projectile.Lifetime <= 0 {
		return fmt.Errorf("%s shooter: projectile lifetime must be positive, got %v", owner, s.Projectile.Lifetime)
	}
	if s.Projectile.Damage < 1 {
		return fmt.Errorf("%s shooter: projectile damage must be at least 1, got %d", owner, s.Projectile.Damage)
	}
	return nil
}

// LevelCount 返回关卡数量
func (c *GameplayConfig) LevelCount() int {
	return len(c.Levels)
}

// Level 返回指定关卡（从 1 开始编号）
// 如果编号越界，返回 nil 和 false
func (c *GameplayConfig) Level(index int) (*LevelConfig, bool) {
	if index < 1 || index > len(c.Levels) {
		return nil, false
	}
	return &c.Levels[index-1], true
}

// FormationSpeed 返回指定关卡的编队速度
func (c *GameplayConfig) FormationSpeed(level *LevelConfig) float64 {
	if level == nil || level.SpeedMultiplier == 0 {
		return c.Formation.Speed
	}
	return c.Formation.Speed * level.SpeedMultiplier
}

// EnemyHealth 返回指定关卡的敌人生命值
func (c *GameplayConfig) EnemyHealth(level *LevelConfig) int {
	if level == nil || level.EnemyHealth == 0 {
		return c.Enemy.MaxHealth
	}
	return level.EnemyHealth
}
