package check

import "testing"

func TestDefaultHasSaneBaseline(t *testing.T) {
	cfg := Default()
	if cfg.Examples <= 0 {
		t.Errorf("Default().Examples = %d, expected positive", cfg.Examples)
	}
	if cfg.MaxShrink <= 0 {
		t.Errorf("Default().MaxShrink = %d, expected positive", cfg.MaxShrink)
	}
	if cfg.Parallelism <= 0 {
		t.Errorf("Default().Parallelism = %d, expected positive", cfg.Parallelism)
	}
}

func TestEffectiveSeedDerivesWhenZero(t *testing.T) {
	cfg := Config{Seed: 0}
	if cfg.EffectiveSeed() == 0 {
		t.Error("EffectiveSeed() returned 0 for an unset seed")
	}
}

func TestEffectiveSeedHonorsExplicitSeed(t *testing.T) {
	cfg := Config{Seed: 42}
	if got := cfg.EffectiveSeed(); got != 42 {
		t.Errorf("EffectiveSeed() = %d, expected 42", got)
	}
}

func TestEnvOverrideWinsOverDefault(t *testing.T) {
	t.Setenv("CHECKITO_GENERATE_EXAMPLES", "7")
	cfg := Default()
	if cfg.Examples != 7 {
		t.Errorf("Default().Examples = %d after CHECKITO_GENERATE_EXAMPLES=7, expected 7", cfg.Examples)
	}
}

func TestEnvOverrideSetsSizeBounds(t *testing.T) {
	t.Setenv("CHECKITO_GENERATE_SIZE_LO", "0.25")
	t.Setenv("CHECKITO_GENERATE_SIZE_HI", "0.75")
	cfg := Default()
	if cfg.SizeLo != 0.25 {
		t.Errorf("Default().SizeLo = %v, expected 0.25", cfg.SizeLo)
	}
	if cfg.SizeHi != 0.75 {
		t.Errorf("Default().SizeHi = %v, expected 0.75", cfg.SizeHi)
	}
}

func TestEnvOverrideSetsFixedSize(t *testing.T) {
	t.Setenv("CHECKITO_GENERATE_SIZE_FIXED", "0.5")
	cfg := Default()
	if cfg.SizeFixed == nil || *cfg.SizeFixed != 0.5 {
		t.Errorf("Default().SizeFixed = %v, expected pointer to 0.5", cfg.SizeFixed)
	}
}

func TestEnvOverrideSetsObservabilityFlags(t *testing.T) {
	t.Setenv("CHECKITO_GENERATE_ITEMS", "false")
	t.Setenv("CHECKITO_SHRINK_ITEMS", "false")
	t.Setenv("CHECKITO_SHRINK_ERRORS", "false")
	cfg := Default()
	if cfg.LogItems {
		t.Error("Default().LogItems = true after CHECKITO_GENERATE_ITEMS=false")
	}
	if cfg.ShrinkLogItems {
		t.Error("Default().ShrinkLogItems = true after CHECKITO_SHRINK_ITEMS=false")
	}
	if cfg.ShrinkLogErrors {
		t.Error("Default().ShrinkLogErrors = true after CHECKITO_SHRINK_ERRORS=false")
	}
}
