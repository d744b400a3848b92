package transcript

import "testing"

func TestValidateVideoID(t *testing.T) {
	tests := []struct {
		name    string
		videoID string
		wantErr bool
	}{
		// Valid cases
		{"valid video ID", "dQw4w9WgXcQ", false},
		{"valid with underscore", "dQw4w9Wg_cQ", false},
		{"valid with dash", "dQw4w9Wg-cQ", false},
		{"valid all numbers", "12345678901", false},
		{"valid mixed case", "ABCdefGHIjk", false},

		// Invalid cases
		{"empty video ID", "", true},
		{"too short", "dQw4w9W", true},
		{"too long", "dQw4w9WgXcQQ", true},
		{"special char", "dQw4w9Wg!cQ", true},
		{"space", "dQw4w9Wg cQ", true},
		{"unicode", "dQw4w9W日本", true},
		{"slash", "dQw4w9W/cQ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVideoID(tt.videoID)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateVideoID(%q) error = %v, wantErr %v", tt.videoID, err, tt.wantErr)
			}
		})
	}
}
