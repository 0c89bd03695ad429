package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func threeLevelImage() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, 6, 2))
	levels := []uint8{0, 100, 255}
	for y := 0; y < 2; y++ {
		for x := 0; x < 6; x++ {
			img.SetGray(x, y, color.Gray{Y: levels[x%3]})
		}
	}
	return img
}

func TestSave_PNGRoundTrip(t *testing.T) {
	src := threeLevelImage()
	path := filepath.Join(t.TempDir(), "out.png")

	if err := Save(src, path, SaveOptions{}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := Decode(path)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 6; x++ {
			want := src.GrayAt(x, y).Y
			r, _, _, _ := got.At(x, y).RGBA()
			if uint8(r>>8) != want {
				t.Errorf("(%d,%d): got %d, want %d", x, y, r>>8, want)
			}
		}
	}
}

func TestSave_FormatsByExtension(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"out.jpg", "out.jpeg", "out.gif", "out.tif", "out.bmp"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := Save(threeLevelImage(), path, SaveOptions{}); err != nil {
				t.Fatalf("Save failed: %v", err)
			}
			if _, err := Decode(path); err != nil {
				t.Errorf("saved file does not decode: %v", err)
			}
		})
	}
}

func TestSave_FormatOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edges")
	if err := Save(threeLevelImage(), path, SaveOptions{Format: "png"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Errorf("override did not produce PNG: %v", err)
	}
}

func TestSave_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xyz")
	err := Save(threeLevelImage(), path, SaveOptions{})

	var ee *EncodeError
	if !errors.As(err, &ee) {
		t.Fatalf("got %v, want *EncodeError", err)
	}
	if ee.Path != path {
		t.Errorf("Path: got %s, want %s", ee.Path, path)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("no file should be created for an unsupported format")
	}
}

func TestSave_UnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "out.png")
	err := Save(threeLevelImage(), path, SaveOptions{})

	var ee *EncodeError
	if !errors.As(err, &ee) {
		t.Fatalf("got %v, want *EncodeError", err)
	}
	if ee.Format != "png" {
		t.Errorf("Format: got %q, want png", ee.Format)
	}
}

func TestEncodePNGBase64(t *testing.T) {
	s, err := EncodePNGBase64(threeLevelImage())
	if err != nil {
		t.Fatalf("EncodePNGBase64 failed: %v", err)
	}

	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		t.Fatalf("invalid base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("invalid PNG: %v", err)
	}
	if img.Bounds().Dx() != 6 || img.Bounds().Dy() != 2 {
		t.Errorf("dimensions: got %v", img.Bounds())
	}
}

func TestErrorMessages(t *testing.T) {
	cause := errors.New("boom")

	de := &DecodeError{Path: "in.png", Err: cause}
	if de.Error() != "decode in.png: boom" {
		t.Errorf("DecodeError: got %q", de.Error())
	}
	if !errors.Is(de, cause) {
		t.Error("DecodeError should unwrap to its cause")
	}

	ee := &EncodeError{Path: "out.jpg", Format: "jpeg", Err: cause}
	if ee.Error() != "encode out.jpg as jpeg: boom" {
		t.Errorf("EncodeError: got %q", ee.Error())
	}
	if (&EncodeError{Path: "x", Err: cause}).Error() != "encode x: boom" {
		t.Error("EncodeError without format has wrong message")
	}
}
