package mlclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "sewaaset-prediction/internal/errors"
	"sewaaset-prediction/internal/models"
	"sewaaset-prediction/pkg/mlclient"
)

func features() models.FeatureVector {
	return models.NewFeatureVectorBuilder(2).
		Number("luas_tanah", 200).
		Text("kecamatan", "Gubeng").
		Build()
}

func TestClientPredict(t *testing.T) {
	t.Run("it posts the vector to the model of the property type", func(t *testing.T) {
		var gotPath, gotContentType string
		var gotBody []byte
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotContentType = r.Header.Get("Content-Type")
			gotBody, _ = io.ReadAll(r.Body)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"price": 1700000000, "model_version": "tanah-2024.1"}`))
		}))
		defer srv.Close()

		client := mlclient.NewClient(srv.URL+"/", time.Second)
		got, err := client.Predict(context.Background(), models.PropertyTypeLand, features())
		if err != nil {
			t.Fatal(err)
		}

		if gotPath != "/predict/tanah" {
			t.Errorf("path: %s", gotPath)
		}
		if gotContentType != "application/json" {
			t.Errorf("content type: %s", gotContentType)
		}
		if string(gotBody) != `{"features":{"luas_tanah":200,"kecamatan":"Gubeng"}}` {
			t.Errorf("body: %s", gotBody)
		}
		if got.Price != 1700000000 || got.ModelVersion != "tanah-2024.1" {
			t.Errorf("prediction: %+v", got)
		}
	})

	for name, handler := range map[string]http.HandlerFunc{
		"a non-200 status": func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "model not loaded", http.StatusInternalServerError)
		},
		"a malformed body": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"price":`))
		},
		"a missing price": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"model_version":"x"}`))
		},
		"a negative price": func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]interface{}{"price": -1})
		},
	} {
		t.Run("it reports "+name+" as a prediction error", func(t *testing.T) {
			srv := httptest.NewServer(handler)
			defer srv.Close()

			_, err := mlclient.NewClient(srv.URL, time.Second).Predict(context.Background(), models.PropertyTypeBuilding, features())
			var predErr *apperrors.PredictionError
			if !errors.As(err, &predErr) {
				t.Fatalf("expected PredictionError, got %v", err)
			}
			if predErr.PropertyType != models.PropertyTypeBuilding {
				t.Errorf("property type: %s", predErr.PropertyType)
			}
		})
	}

	t.Run("a status error carries the status code", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		_, err := mlclient.NewClient(srv.URL, time.Second).Predict(context.Background(), models.PropertyTypeLand, features())
		var predErr *apperrors.PredictionError
		if !errors.As(err, &predErr) || predErr.StatusCode != http.StatusBadGateway {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("a cancelled context aborts the request", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := mlclient.NewClient(srv.URL, time.Second).Predict(ctx, models.PropertyTypeLand, features())
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})

	t.Run("an unreachable server is a prediction error", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		_, err := mlclient.NewClient(url, time.Second).Predict(context.Background(), models.PropertyTypeLand, features())
		var predErr *apperrors.PredictionError
		if !errors.As(err, &predErr) || predErr.StatusCode != 0 {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestClientHealth(t *testing.T) {
	t.Run("200 is healthy", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/health" {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			w.Write([]byte(`{"status":"ok"}`))
		}))
		defer srv.Close()

		if err := mlclient.NewClient(srv.URL, time.Second).Health(context.Background()); err != nil {
			t.Error(err)
		}
	})

	t.Run("anything else is unhealthy", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		if err := mlclient.NewClient(srv.URL, time.Second).Health(context.Background()); err == nil {
			t.Error("expected error does not occur")
		}
	})
}
