package gen

import "testing"

func TestSignedTargetPrefersZeroInRange(t *testing.T) {
	if got := signedTarget(-5, 5); got != 0 {
		t.Errorf("signedTarget(-5,5) = %d, expected 0", got)
	}
}

func TestSignedTargetClampsToNearestBoundOutOfRange(t *testing.T) {
	if got := signedTarget(3, 10); got != 3 {
		t.Errorf("signedTarget(3,10) = %d, expected 3", got)
	}
	if got := signedTarget(-10, -3); got != -3 {
		t.Errorf("signedTarget(-10,-3) = %d, expected -3", got)
	}
}

func TestSignedChildrenTowardsCustomTarget(t *testing.T) {
	kids := signedChildrenTowards(10, 0, 20, 7, func(x int) ShrinkTree[int] { return Leaf(x) })
	found := false
	for _, k := range kids {
		if k.Value == 7 {
			found = true
		}
		if k.Value < 0 || k.Value > 20 {
			t.Fatalf("child %d escapes [0,20]", k.Value)
		}
	}
	if !found {
		t.Errorf("signedChildrenTowards never offers the target itself as a candidate")
	}
}
