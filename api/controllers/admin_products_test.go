package controllers

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	mediasvc "github.com/bowboxshop/bowbox-backend/internal/media"
	productsvc "github.com/bowboxshop/bowbox-backend/internal/products"
)

type testProductService struct {
	createFn func(ctx context.Context, input productsvc.CreateProductInput) (*productsvc.ProductDTO, error)
	deleteFn func(ctx context.Context, id uuid.UUID) error
}

func (s *testProductService) List(context.Context, string, string) ([]productsvc.ProductDTO, error) {
	return nil, nil
}

func (s *testProductService) Home(context.Context) (*productsvc.HomeDTO, error) { return nil, nil }

func (s *testProductService) Get(context.Context, uuid.UUID) (*productsvc.ProductDetailDTO, error) {
	return nil, nil
}

func (s *testProductService) BuyLink(context.Context, uuid.UUID) (*productsvc.BuyLinkDTO, error) {
	return nil, nil
}

func (s *testProductService) ListAdmin(context.Context) ([]productsvc.ProductDTO, error) {
	return nil, nil
}

func (s *testProductService) Create(ctx context.Context, input productsvc.CreateProductInput) (*productsvc.ProductDTO, error) {
	if s.createFn != nil {
		return s.createFn(ctx, input)
	}
	return &productsvc.ProductDTO{}, nil
}

func (s *testProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *testProductService) Stats(context.Context) (*productsvc.StatsDTO, error) { return nil, nil }

type testMediaService struct {
	uploadFn func(ctx context.Context, input mediasvc.UploadInput) (*mediasvc.MediaDTO, error)
}

func (s *testMediaService) Upload(ctx context.Context, input mediasvc.UploadInput) (*mediasvc.MediaDTO, error) {
	if s.uploadFn != nil {
		return s.uploadFn(ctx, input)
	}
	return &mediasvc.MediaDTO{URL: "https://storage.googleapis.com/bowbox/object"}, nil
}

func multipartBody(t *testing.T, fields map[string]string, fileField, fileName string, fileContent []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("write field %s: %v", key, err)
		}
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, fileName)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write(fileContent); err != nil {
			t.Fatalf("write file content: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, writer.FormDataContentType()
}

func TestAdminProductCreateWithImageFile(t *testing.T) {
	var uploaded *mediasvc.UploadInput
	media := &testMediaService{
		uploadFn: func(ctx context.Context, input mediasvc.UploadInput) (*mediasvc.MediaDTO, error) {
			uploaded = &input
			return &mediasvc.MediaDTO{URL: "https://storage.googleapis.com/bowbox/1_rose.jpg"}, nil
		},
	}
	var created *productsvc.CreateProductInput
	svc := &testProductService{
		createFn: func(ctx context.Context, input productsvc.CreateProductInput) (*productsvc.ProductDTO, error) {
			created = &input
			return &productsvc.ProductDTO{}, nil
		},
	}

	body, contentType := multipartBody(t, map[string]string{
		"name":           "Rose Candle",
		"price":          "199.00",
		"category":       "Candle",
		"is_new_arrival": "true",
	}, "image", "rose.jpg", []byte("jpegbytes"))

	req := authedRequest(http.MethodPost, "/api/admin/v1/products", body, uuid.New())
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	AdminProductCreate(svc, media, testLogger())(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("unexpected status %d: %s", resp.Code, resp.Body.String())
	}
	if uploaded == nil {
		t.Fatal("expected media upload")
	}
	if uploaded.FileName != "rose.jpg" {
		t.Fatalf("unexpected file name %q", uploaded.FileName)
	}
	if created == nil {
		t.Fatal("expected product create")
	}
	if created.ImageURL != "https://storage.googleapis.com/bowbox/1_rose.jpg" {
		t.Fatalf("unexpected image url %q", created.ImageURL)
	}
	if !created.IsNewArrival || created.IsSpecial || created.IsBestSeller {
		t.Fatalf("unexpected flags %+v", created)
	}
}

func TestAdminProductCreateWithDriveLink(t *testing.T) {
	var created *productsvc.CreateProductInput
	svc := &testProductService{
		createFn: func(ctx context.Context, input productsvc.CreateProductInput) (*productsvc.ProductDTO, error) {
			created = &input
			return &productsvc.ProductDTO{}, nil
		},
	}

	body, contentType := multipartBody(t, map[string]string{
		"name":       "Pearl Necklace",
		"price":      "899.50",
		"category":   "Jewellery",
		"image_link": "https://drive.google.com/file/d/ABC123/view",
	}, "", "", nil)

	req := authedRequest(http.MethodPost, "/api/admin/v1/products", body, uuid.New())
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	AdminProductCreate(svc, &testMediaService{}, testLogger())(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("unexpected status %d: %s", resp.Code, resp.Body.String())
	}
	if created.ImageURL != "https://lh3.googleusercontent.com/u/0/d/ABC123" {
		t.Fatalf("unexpected image url %q", created.ImageURL)
	}
}

func TestAdminProductCreateRequiresImage(t *testing.T) {
	body, contentType := multipartBody(t, map[string]string{
		"name":     "Bare Product",
		"price":    "10.00",
		"category": "Candle",
	}, "", "", nil)

	req := authedRequest(http.MethodPost, "/api/admin/v1/products", body, uuid.New())
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	AdminProductCreate(&testProductService{}, &testMediaService{}, testLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestAdminProductCreateRejectsBadPrice(t *testing.T) {
	body, contentType := multipartBody(t, map[string]string{
		"name":       "Broken",
		"price":      "abc",
		"category":   "Candle",
		"image_link": "https://example.com/x.png",
	}, "", "", nil)

	req := authedRequest(http.MethodPost, "/api/admin/v1/products", body, uuid.New())
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	AdminProductCreate(&testProductService{}, &testMediaService{}, testLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestAdminProductDelete(t *testing.T) {
	productID := uuid.New()
	var deleted uuid.UUID
	svc := &testProductService{
		deleteFn: func(ctx context.Context, id uuid.UUID) error {
			deleted = id
			return nil
		},
	}

	req := authedRequest(http.MethodDelete, "/api/admin/v1/products/"+productID.String(), nil, uuid.New())
	req = withURLParam(req, "productId", productID.String())
	resp := httptest.NewRecorder()
	AdminProductDelete(svc, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.Code)
	}
	if deleted != productID {
		t.Fatalf("expected delete of %s, got %s", productID, deleted)
	}
}
