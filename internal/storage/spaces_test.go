package storage

import (
	"strings"
	"testing"

	"github.com/Rishikesh183/auction-tracker/internal/auction"
)

func TestValidatePhotoAcceptsSupportedTypes(t *testing.T) {
	for _, ct := range []string{"image/jpeg", "image/jpg", "image/png", "image/webp"} {
		if err := ValidatePhoto(ct, 1024); err != nil {
			t.Errorf("ValidatePhoto(%q) = %v, want nil", ct, err)
		}
	}
}

func TestValidatePhotoRejectsUnsupportedType(t *testing.T) {
	err := ValidatePhoto("image/gif", 1024)
	if err == nil {
		t.Fatal("gif accepted")
	}
	if !auction.IsValidation(err) {
		t.Errorf("error is not a validation error: %v", err)
	}
}

func TestValidatePhotoRejectsOversize(t *testing.T) {
	if err := ValidatePhoto("image/png", MaxPhotoSize); err != nil {
		t.Errorf("photo at size limit rejected: %v", err)
	}
	err := ValidatePhoto("image/png", MaxPhotoSize+1)
	if err == nil {
		t.Fatal("oversize photo accepted")
	}
	if !auction.IsValidation(err) {
		t.Errorf("error is not a validation error: %v", err)
	}
}

func TestPhotoKeySlugsName(t *testing.T) {
	key := PhotoKey("  Virat  Kohli ", "image/png")
	if !strings.HasPrefix(key, "virat-kohli-") {
		t.Errorf("key = %q, want virat-kohli- prefix", key)
	}
	if !strings.HasSuffix(key, ".png") {
		t.Errorf("key = %q, want .png suffix", key)
	}
}

func TestPhotoKeyExtensionFollowsContentType(t *testing.T) {
	if key := PhotoKey("Rohit", "image/webp"); !strings.HasSuffix(key, ".webp") {
		t.Errorf("key = %q, want .webp suffix", key)
	}
	if key := PhotoKey("Rohit", "image/jpeg"); !strings.HasSuffix(key, ".jpg") {
		t.Errorf("key = %q, want .jpg suffix", key)
	}
}
