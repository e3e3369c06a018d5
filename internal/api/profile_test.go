package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
)

func TestProfileService_Me(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/profile/me" {
			t.Errorf("expected /profile/me, got %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer tok-123" {
			t.Errorf("expected bearer token, got %q", r.Header.Get("Authorization"))
		}
		json.NewEncoder(w).Encode(listingFixture()[0])
	})

	p, err := client.Profile.Me(context.Background(), "tok-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Ava" {
		t.Errorf("unexpected profile: %+v", p)
	}
}

func TestProfileService_Me_NotFound(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Profile not found"})
	})

	_, err := client.Profile.Me(context.Background(), "tok-123")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProfileService_Create(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/profile" {
			t.Errorf("expected /profile, got %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer tok-123" {
			t.Errorf("expected bearer token, got %q", r.Header.Get("Authorization"))
		}

		var params ProfileParams
		if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if params.PhotographyType != "Wedding" || params.ExperienceYears != 5 {
			t.Errorf("unexpected params: %+v", params)
		}
		if len(params.Skills) != 2 || params.Skills[0] != "Portrait" {
			t.Errorf("unexpected skills: %v", params.Skills)
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"message": "Profile created successfully"})
	})

	err := client.Profile.Create(context.Background(), "tok-123", ProfileParams{
		PhotographyType: "Wedding",
		City:            "Paris",
		ExperienceYears: 5,
		Skills:          []string{"Portrait", "Event"},
		ContactNumber:   "+331",
		Available:       true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProfileService_Update(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("expected PUT, got %s", r.Method)
		}
		if r.URL.Path != "/profile" {
			t.Errorf("expected /profile, got %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(listingFixture()[0])
	})

	err := client.Profile.Update(context.Background(), "tok-123", ProfileParams{
		PhotographyType: "Portrait",
		City:            "Lyon",
		ExperienceYears: 8,
		Skills:          []string{"Editing"},
		ContactNumber:   "+332",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProfileService_Update_Unauthorized(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Could not validate credentials"})
	})

	err := client.Profile.Update(context.Background(), "expired", ProfileParams{})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestProfileService_Upload(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/profile/upload" {
			t.Errorf("expected /profile/upload, got %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer tok-123" {
			t.Errorf("expected bearer token, got %q", r.Header.Get("Authorization"))
		}

		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		files := r.MultipartForm.File["files"]
		if len(files) != 2 {
			t.Fatalf("expected 2 files under field 'files', got %d", len(files))
		}
		if files[0].Filename != "one.jpg" || files[1].Filename != "two.jpg" {
			t.Errorf("unexpected filenames: %s, %s", files[0].Filename, files[1].Filename)
		}

		f, err := files[0].Open()
		if err != nil {
			t.Fatalf("open part: %v", err)
		}
		defer f.Close()
		content, _ := io.ReadAll(f)
		if string(content) != "jpeg-bytes-1" {
			t.Errorf("unexpected file content: %q", content)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"message":   "Images uploaded successfully",
			"file_urls": []string{"/uploads/x.jpg", "/uploads/y.jpg"},
		})
	})

	urls, err := client.Profile.Upload(context.Background(), "tok-123", []Upload{
		{Name: "one.jpg", Reader: strings.NewReader("jpeg-bytes-1")},
		{Name: "two.jpg", Reader: strings.NewReader("jpeg-bytes-2")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(urls) != 2 || urls[0] != "/uploads/x.jpg" {
		t.Errorf("unexpected urls: %v", urls)
	}
}

func TestProfileService_Upload_TooMany(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Maximum 5 photos allowed. You have 4 already."})
	})

	_, err := client.Profile.Upload(context.Background(), "tok-123", []Upload{
		{Name: "a.jpg", Reader: strings.NewReader("x")},
		{Name: "b.jpg", Reader: strings.NewReader("y")},
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	apiErr, ok := IsAPIError(err)
	if !ok || !strings.Contains(apiErr.Detail, "Maximum 5 photos") {
		t.Errorf("expected server detail to surface, got %v", err)
	}
}
