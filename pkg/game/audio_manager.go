package game

import (
	"encoding/binary"
	"log"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SampleRate 音频采样率
const SampleRate = 44100

// SoundID 音效标识
type SoundID int

const (
	SoundPlayerShoot SoundID = iota
	SoundEnemyShoot
	SoundExplosion
	SoundShieldHit
	SoundPlayerHit
	SoundGameOver
	SoundLevelComplete
	SoundButtonClick
)

func (id SoundID) String() string {
	switch id {
	case SoundPlayerShoot:
		return "PlayerShoot"
	case SoundEnemyShoot:
		return "EnemyShoot"
	case SoundExplosion:
		return "Explosion"
	case SoundShieldHit:
		return "ShieldHit"
	case SoundPlayerHit:
		return "PlayerHit"
	case SoundGameOver:
		return "GameOver"
	case SoundLevelComplete:
		return "LevelComplete"
	case SoundButtonClick:
		return "ButtonClick"
	default:
		return "Unknown"
	}
}

// waveform 波形
type waveform int

const (
	waveSquare waveform = iota
	waveSine
	waveNoise
)

// toneSpec 合成音效参数：频率在时长内从 StartFreq 线性滑到 EndFreq，音量线性衰减
type toneSpec struct {
	Wave      waveform
	StartFreq float64
	EndFreq   float64
	Duration  float64 // 秒
	Gain      float64 // 0.0 ~ 1.0
}

var soundTable = map[SoundID][]toneSpec{
	SoundPlayerShoot: {{Wave: waveSquare, StartFreq: 880, EndFreq: 440, Duration: 0.08, Gain: 0.25}},
	SoundEnemyShoot:  {{Wave: waveSquare, StartFreq: 330, EndFreq: 220, Duration: 0.10, Gain: 0.2}},
	SoundExplosion:   {{Wave: waveNoise, Duration: 0.25, Gain: 0.35}},
	SoundShieldHit:   {{Wave: waveNoise, Duration: 0.06, Gain: 0.2}},
	SoundPlayerHit:   {{Wave: waveSquare, StartFreq: 200, EndFreq: 60, Duration: 0.35, Gain: 0.35}},
	SoundButtonClick: {{Wave: waveSine, StartFreq: 1200, EndFreq: 1200, Duration: 0.03, Gain: 0.2}},

	SoundGameOver: {
		{Wave: waveSquare, StartFreq: 392, EndFreq: 392, Duration: 0.2, Gain: 0.3},
		{Wave: waveSquare, StartFreq: 330, EndFreq: 330, Duration: 0.2, Gain: 0.3},
		{Wave: waveSquare, StartFreq: 262, EndFreq: 196, Duration: 0.45, Gain: 0.3},
	},
	SoundLevelComplete: {
		{Wave: waveSine, StartFreq: 523, EndFreq: 523, Duration: 0.12, Gain: 0.3},
		{Wave: waveSine, StartFreq: 659, EndFreq: 659, Duration: 0.12, Gain: 0.3},
		{Wave: waveSine, StartFreq: 784, EndFreq: 784, Duration: 0.25, Gain: 0.3},
	},
}

// synthesize 生成 16 位小端立体声 PCM 数据
func synthesize(segments []toneSpec, sampleRate int) []byte {
	total := 0
	for _, seg := range segments {
		total += int(seg.Duration * float64(sampleRate))
	}
	buf := make([]byte, total*4)

	// 固定种子，保证同一音效每次合成结果一致
	noise := rand.New(rand.NewSource(1))
	offset := 0
	for _, seg := range segments {
		n := int(seg.Duration * float64(sampleRate))
		phase := 0.0
		for i := 0; i < n; i++ {
			progress := float64(i) / float64(n)
			freq := seg.StartFreq + (seg.EndFreq-seg.StartFreq)*progress
			phase += freq / float64(sampleRate)
			phase -= math.Floor(phase)

			var v float64
			switch seg.Wave {
			case waveSquare:
				if phase < 0.5 {
					v = 1
				} else {
					v = -1
				}
			case waveSine:
				v = math.Sin(2 * math.Pi * phase)
			case waveNoise:
				v = noise.Float64()*2 - 1
			}

			sample := int16(v * seg.Gain * (1 - progress) * math.MaxInt16)
			binary.LittleEndian.PutUint16(buf[offset:], uint16(sample))
			binary.LittleEndian.PutUint16(buf[offset+2:], uint16(sample))
			offset += 4
		}
	}
	return buf
}

// AudioManager 音频管理器
//
// 所有音效在程序内合成，不依赖外部资源文件。
// audio.Context 为 nil 时所有播放调用均为空操作（测试和无音频环境）。
type AudioManager struct {
	context         *audio.Context
	settingsManager *SettingsManager
	soundPlayers    map[SoundID]*audio.Player
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: 音频上下文，可为 nil
//   - sm: 设置管理器（读取音效开关和音量），可为 nil
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		context:         ctx,
		settingsManager: sm,
		soundPlayers:    make(map[SoundID]*audio.Player),
	}
}

// PlaySound 播放音效
//
// 返回：
//   - bool: 是否实际播放
func (am *AudioManager) PlaySound(id SoundID) bool {
	if am == nil || am.context == nil {
		return false
	}
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	player := am.getSoundPlayer(id)
	if player == nil {
		return false
	}
	player.SetVolume(am.GetSoundVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", id, err)
	}
	player.Play()
	return true
}

// SetSoundVolume 设置音效音量，立即应用到已缓存的播放器
func (am *AudioManager) SetSoundVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetSoundVolume(volume)
	}
	for _, player := range am.soundPlayers {
		player.SetVolume(clampVolume(volume))
	}
}

// GetSoundVolume 获取当前音效音量
func (am *AudioManager) GetSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return DefaultSettings().SoundVolume
}

// PreloadSounds 预先合成所有音效，避免首次播放时卡顿
func (am *AudioManager) PreloadSounds() {
	if am.context == nil {
		return
	}
	for id := range soundTable {
		am.getSoundPlayer(id)
	}
	log.Printf("[AudioManager] Preloaded %d sounds", len(am.soundPlayers))
}

func (am *AudioManager) getSoundPlayer(id SoundID) *audio.Player {
	if player, ok := am.soundPlayers[id]; ok {
		return player
	}
	segments, ok := soundTable[id]
	if !ok {
		log.Printf("[AudioManager] Warning: Sound not found: %s", id)
		return nil
	}
	player := am.context.NewPlayerFromBytes(synthesize(segments, am.context.SampleRate()))
	am.soundPlayers[id] = player
	return player
}
