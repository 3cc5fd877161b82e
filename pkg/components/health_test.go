package components

import "testing"

// TestHealthApply 测试扣血与死亡判定
func TestHealthApply(t *testing.T) {
	tests := []struct {
		name       string
		health     int
		maxHealth  int
		amount     int
		wantHealth int
		wantKilled bool
	}{
		{"普通伤害不致死", 3, 3, 1, 2, false},
		{"恰好致死", 1, 1, 1, 0, true},
		{"溢出伤害截断为0", 2, 3, 5, 0, true},
		{"零伤害", 2, 3, 0, 2, false},
		{"负伤害视为零", 2, 3, -4, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &HealthComponent{CurrentHealth: tt.health, MaxHealth: tt.maxHealth}
			killed := h.Apply(tt.amount)
			if killed != tt.wantKilled {
				t.Errorf("killed: got %v, want %v", killed, tt.wantKilled)
			}
			if h.CurrentHealth != tt.wantHealth {
				t.Errorf("CurrentHealth: got %d, want %d", h.CurrentHealth, tt.wantHealth)
			}
			if h.Dead != tt.wantKilled {
				t.Errorf("Dead: got %v, want %v", h.Dead, tt.wantKilled)
			}
		})
	}
}

// TestHealthApplyKillsOnce 死亡只触发一次
func TestHealthApplyKillsOnce(t *testing.T) {
	h := NewHealthComponent(2)

	kills := 0
	for i := 0; i < 5; i++ {
		if h.Apply(1) {
			kills++
		}
	}

	if kills != 1 {
		t.Errorf("Expected exactly 1 kill, got %d", kills)
	}
	if h.CurrentHealth != 0 {
		t.Errorf("Expected health 0, got %d", h.CurrentHealth)
	}
}

func TestNewHealthComponentClampsMax(t *testing.T) {
	h := NewHealthComponent(0)
	if h.MaxHealth != 1 || h.CurrentHealth != 1 {
		t.Errorf("Expected 1/1, got %d/%d", h.CurrentHealth, h.MaxHealth)
	}
}

func TestHealthRatio(t *testing.T) {
	h := NewHealthComponent(3)
	h.Apply(1)
	if got := h.Ratio(); got != 2.0/3.0 {
		t.Errorf("Ratio: got %v, want %v", got, 2.0/3.0)
	}

	empty := &HealthComponent{}
	if empty.Ratio() != 0 {
		t.Error("Ratio with MaxHealth 0 should be 0")
	}
}
