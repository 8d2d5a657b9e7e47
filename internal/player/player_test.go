package player

import "testing"

func TestNewClampsHP(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{50, 50},
		{-10, 0},
		{0, 0},
		{MaxHP, MaxHP},
		{MaxHP + 40, MaxHP},
	}
	for _, c := range cases {
		p := New(1, "hero", c.in)
		if p.HP != c.want {
			t.Errorf("New(hp=%d).HP = %d, want %d", c.in, p.HP, c.want)
		}
	}
}

func TestDamageAndHealClamp(t *testing.T) {
	p := New(1, "hero", 50)

	p.Damage(20)
	if p.HP != 30 {
		t.Fatalf("unexpected hp after damage: %d", p.HP)
	}
	p.Damage(999)
	if p.HP != 0 {
		t.Fatalf("hp went below zero: %d", p.HP)
	}
	if p.Alive() {
		t.Fatalf("expected dead at 0 hp")
	}

	p.Heal(40)
	if p.HP != 40 {
		t.Fatalf("unexpected hp after heal: %d", p.HP)
	}
	p.Heal(999)
	if p.HP != MaxHP {
		t.Fatalf("hp went above cap: %d", p.HP)
	}
	if !p.Alive() {
		t.Fatalf("expected alive at full hp")
	}
}

func TestNonPositiveAmountsIgnored(t *testing.T) {
	p := New(1, "hero", 50)
	p.Damage(0)
	p.Damage(-5)
	p.Heal(0)
	p.Heal(-5)
	if p.HP != 50 {
		t.Fatalf("hp changed by non-positive amount: %d", p.HP)
	}
}

func TestCopiesAreIndependent(t *testing.T) {
	a := New(1, "hero", 80)
	b := a
	b.Damage(30)
	if a.HP != 80 || b.HP != 50 {
		t.Fatalf("value copy aliased state: a=%d b=%d", a.HP, b.HP)
	}
}
