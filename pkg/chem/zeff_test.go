package chem

import "testing"

func TestZeffSlaterDefaults(t *testing.T) {
	// lone 1s electron screens nothing
	hv, herr := hydrogen().Zeff(ZeffOptions{})
	approx(t, "H zeff", mustFloat(t, hv, herr), 1.0, 1e-9)

	// [Ar] 3d6 4s2, default subshell 4s: one 4s partner at 0.35, the full
	// n=3 shell (14 electrons) at 0.85, ten core electrons at 1.00
	fv, ferr := iron().Zeff(ZeffOptions{})
	approx(t, "Fe zeff 4s", mustFloat(t, fv, ferr), 26-(0.35+14*0.85+10), 1e-9)
}

func TestZeffSlaterExplicitSubshell(t *testing.T) {
	fe := iron()
	// 3d group: five 3d partners at 0.35, all 18 lower-group electrons at 1.00
	dv, derr := fe.Zeff(ZeffOptions{N: 3, Orbital: "d"})
	approx(t, "Fe zeff 3d",
		mustFloat(t, dv, derr), 26-(5*0.35+18), 1e-9)

	// extra electron keeps the full group
	ev, eerr := fe.Zeff(ZeffOptions{N: 3, Orbital: "d", ExtraElectron: true})
	approx(t, "Fe zeff 3d alle",
		mustFloat(t, ev, eerr), 26-(6*0.35+18), 1e-9)
}

func TestZeffClementi(t *testing.T) {
	fe := iron()
	v, err := fe.Zeff(ZeffOptions{N: 3, Orbital: "d", Method: ZeffClementi})
	if err != nil {
		t.Fatalf("clementi: %v", err)
	}
	approx(t, "Fe clementi 3d", v, 26-19.86, 1e-9)

	// no stored constant for the default (4, s) subshell: nil, not an error
	v, err = fe.Zeff(ZeffOptions{Method: ZeffClementi})
	if err != nil || v != nil {
		t.Fatalf("missing constant: got %v, %v", v, err)
	}
}

func TestZeffValidation(t *testing.T) {
	fe := iron()
	if _, err := fe.Zeff(ZeffOptions{N: -2}); !isInvalidArg(err) {
		t.Fatal("negative n should fail with InvalidArgument")
	}
	if _, err := fe.Zeff(ZeffOptions{Orbital: "x"}); !isInvalidArg(err) {
		t.Fatal("unknown orbital should fail with InvalidArgument")
	}
	if _, err := fe.Zeff(ZeffOptions{Method: "hartree"}); !isInvalidArg(err) {
		t.Fatal("unknown method should fail with InvalidArgument")
	}
	// method names are case-insensitive
	if _, err := fe.Zeff(ZeffOptions{Method: "Slater"}); err != nil {
		t.Fatalf("mixed-case method: %v", err)
	}

	bad := iron()
	bad.Econf = "not a configuration"
	if _, err := bad.Zeff(ZeffOptions{}); err == nil {
		t.Fatal("malformed configuration must fail, never silently substitute")
	}
}

func TestNValence(t *testing.T) {
	fe := iron()
	simple, err := fe.NValence("simple")
	if err != nil || simple != 2 {
		t.Fatalf("simple d-block valence: got %d, %v", simple, err)
	}
	full, err := fe.NValence("")
	if err != nil || full != 8 {
		t.Fatalf("full d-block valence: got %d, %v (want 4s2+3d6)", full, err)
	}
}

func TestScreeningMap(t *testing.T) {
	fe := iron()
	m := fe.ScreeningMap()
	if got := m[ScreeningKey{N: 3, Orbital: "d"}]; got != 19.86 {
		t.Fatalf("ScreeningMap: got %v", got)
	}
	if _, ok := m[ScreeningKey{N: 4, Orbital: "s"}]; ok {
		t.Fatal("unexpected screening entry")
	}
}
