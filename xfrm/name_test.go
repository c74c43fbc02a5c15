package xfrm

import "testing"

func TestParseNameBasic(t *testing.T) {
	n, err := ParseName("ImageToProbe")
	if err != nil {
		t.Fatalf("ParseName() error = %v", err)
	}
	if n.From != "Image" || n.To != "Probe" {
		t.Errorf("ParseName() = %+v, want From=Image To=Probe", n)
	}
}

func TestParseNameLowercaseFirstLetter(t *testing.T) {
	n, err := ParseName("imageToProbe")
	if err != nil {
		t.Fatalf("ParseName() error = %v", err)
	}
	if n.From != "Image" || n.To != "Probe" {
		t.Errorf("ParseName() = %+v, want capitalized frames", n)
	}
}

func TestParseNameTrailingTransformSuffix(t *testing.T) {
	n, err := ParseName("ImageToProbeTransform")
	if err != nil {
		t.Fatalf("ParseName() error = %v", err)
	}
	if n.To != "Probe" {
		t.Errorf("ParseName() To = %q, want Probe (Transform suffix dropped)", n.To)
	}
}

func TestParseNameSkipsFalseToMatch(t *testing.T) {
	// "TestToolToTracker": the first "To" in "Tool" is not followed by
	// an uppercase letter, so only the second counts as a real match.
	n, err := ParseName("TestToolToTracker")
	if err != nil {
		t.Fatalf("ParseName() error = %v", err)
	}
	if n.From != "TestTool" || n.To != "Tracker" {
		t.Errorf("ParseName() = %+v, want From=TestTool To=Tracker", n)
	}
}

func TestParseNameNoFrameBeforeToFails(t *testing.T) {
	if _, err := ParseName("ToProbe"); err == nil {
		t.Error("ParseName(\"ToProbe\") should fail: no frame before To")
	}
}

func TestParseNameNoToFails(t *testing.T) {
	if _, err := ParseName("ImageProbe"); err == nil {
		t.Error("ParseName(\"ImageProbe\") should fail: no To phrase")
	}
}

func TestIsValidRejectsEmptyFrame(t *testing.T) {
	if NewName("", "Probe").IsValid() {
		t.Error("IsValid() with empty From should be false")
	}
	if NewName("Image", "").IsValid() {
		t.Error("IsValid() with empty To should be false")
	}
}

func TestIsValidRejectsEmbeddedToUppercasePhrase(t *testing.T) {
	// Bypassing ParseName, NewName("FooToBar", "Baz") builds a Name
	// whose String() is "FooToBarToBaz" - two matching "To" phrases,
	// which ParseName would reject. IsValid must reject it too.
	n := NewName("FooToBar", "Baz")
	if n.IsValid() {
		t.Errorf("IsValid() = true for %+v, want false (From contains an embedded To<uppercase> phrase)", n)
	}
	if _, err := ParseName(n.String()); err == nil {
		t.Errorf("ParseName(%q) should fail to confirm the ambiguity IsValid is rejecting", n.String())
	}
}

func TestNameString(t *testing.T) {
	n := NewName("image", "probe")
	if got := n.String(); got != "ImageToProbe" {
		t.Errorf("String() = %q, want ImageToProbe", got)
	}
}
