package utils

import "testing"

func TestCleanFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"photo.jpg", "photo.jpg"},
		{"../../etc/passwd", "passwd"},
		{`C:\Users\me\pic.png`, "pic.png"},
		{"my holiday photo!.jpeg", "my_holiday_photo_.jpeg"},
		{"a___b.png", "a_b.png"},
		{"___", "image"},
		{"", "image"},
	}

	for _, tt := range tests {
		if got := CleanFilename(tt.in); got != tt.want {
			t.Errorf("CleanFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSplitNameExt(t *testing.T) {
	tests := []struct {
		in       string
		wantBase string
		wantExt  string
	}{
		{"photo.jpg", "photo", ".jpg"},
		{"archive.tar.gz", "archive.tar", ".gz"},
		{"noext", "noext", ""},
		{".hidden", ".hidden", ""},
		{"trailing.", "trailing.", ""},
	}

	for _, tt := range tests {
		base, ext := SplitNameExt(tt.in)
		if base != tt.wantBase || ext != tt.wantExt {
			t.Errorf("SplitNameExt(%q) = (%q, %q), want (%q, %q)",
				tt.in, base, ext, tt.wantBase, tt.wantExt)
		}
	}
}

func TestDerivedName(t *testing.T) {
	tests := []struct {
		original string
		ext      string
		want     string
	}{
		{"photo.png", ".jpg", "photo.jpg"},
		{"dir/nested name.webp", ".png", "nested_name.png"},
		{"", ".jpg", "image.jpg"},
	}

	for _, tt := range tests {
		if got := DerivedName(tt.original, tt.ext); got != tt.want {
			t.Errorf("DerivedName(%q, %q) = %q, want %q", tt.original, tt.ext, got, tt.want)
		}
	}
}
