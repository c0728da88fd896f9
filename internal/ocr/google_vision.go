package ocr

import (
	"context"
	"fmt"
	"io"
	"os"

	vision "cloud.google.com/go/vision/v2/apiv1"
	"cloud.google.com/go/vision/v2/apiv1/visionpb"
	"google.golang.org/api/option"
)

// bcp47Hints maps the tesseract-style language codes used throughout the UI
// to the BCP-47 hints the Vision API expects. Unknown codes pass through.
var bcp47Hints = map[string]string{
	"eng": "en",
	"guj": "gu",
	"hin": "hi",
	"ben": "bn",
	"tam": "ta",
	"tel": "te",
	"kan": "kn",
	"mal": "ml",
	"pan": "pa",
	"ori": "or",
	"san": "sa",
}

// GoogleVisionService implements Service using the Cloud Vision API.
// Vision auto-detects scripts, so the advertised language inventory is the
// configured hint list rather than engine state.
type GoogleVisionService struct {
	client    *vision.ImageAnnotatorClient
	languages []string
}

// NewGoogleVisionService creates a Vision-backed OCR service with credentials
// from the environment: GOOGLE_CREDENTIALS (inline JSON) is checked first,
// then GOOGLE_APPLICATION_CREDENTIALS (file path), then default credentials.
// languages is the inventory advertised to clients; empty means eng only.
func NewGoogleVisionService(ctx context.Context, languages []string) (*GoogleVisionService, error) {
	const op = "NewGoogleVisionService"

	var client *vision.ImageAnnotatorClient
	var err error

	if credJSON := os.Getenv("GOOGLE_CREDENTIALS"); credJSON != "" {
		client, err = vision.NewImageAnnotatorClient(ctx, option.WithCredentialsJSON([]byte(credJSON)))
		if err != nil {
			return nil, WrapOCRError(op, err, "failed to create client with GOOGLE_CREDENTIALS")
		}
	} else if credFile := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); credFile != "" {
		client, err = vision.NewImageAnnotatorClient(ctx, option.WithCredentialsFile(credFile))
		if err != nil {
			return nil, WrapOCRError(op, err, "failed to create client with GOOGLE_APPLICATION_CREDENTIALS")
		}
	} else {
		client, err = vision.NewImageAnnotatorClient(ctx)
		if err != nil {
			return nil, WrapOCRError(op, ErrMissingCredentials, "no credentials found in environment")
		}
	}

	if len(languages) == 0 {
		languages = []string{DefaultLanguage}
	}
	return &GoogleVisionService{client: client, languages: languages}, nil
}

// Languages returns the configured language inventory.
func (g *GoogleVisionService) Languages(ctx context.Context) ([]string, error) {
	return append([]string(nil), g.languages...), nil
}

// ExtractText extracts text from an image using Vision TEXT_DETECTION.
func (g *GoogleVisionService) ExtractText(ctx context.Context, image io.Reader, lang string) (string, error) {
	const op = "ExtractText"

	data, err := readImage(image)
	if err != nil {
		return "", WrapOCRError(op, err, "")
	}

	requested := ParseLanguages(lang)
	if missing := missingLanguages(requested, g.languages); len(missing) > 0 {
		return "", NewMissingLanguageError(op, missing)
	}

	hints := make([]string, len(requested))
	for i, code := range requested {
		if hint, ok := bcp47Hints[code]; ok {
			hints[i] = hint
		} else {
			hints[i] = code
		}
	}

	req := &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{
			{
				Image: &visionpb.Image{Content: data},
				Features: []*visionpb.Feature{
					{Type: visionpb.Feature_TEXT_DETECTION},
				},
				ImageContext: &visionpb.ImageContext{LanguageHints: hints},
			},
		},
	}

	resp, err := g.client.BatchAnnotateImages(ctx, req)
	if err != nil {
		return "", WrapOCRError(op, ErrOCRFailed, fmt.Sprintf("Vision API call failed: %v", err))
	}
	if len(resp.Responses) == 0 {
		return "", WrapOCRError(op, ErrOCRFailed, "no response from Vision API")
	}

	imageResp := resp.Responses[0]
	if imageResp.Error != nil {
		return "", WrapOCRError(op, ErrOCRFailed, fmt.Sprintf("Vision API error: %s", imageResp.Error.Message))
	}

	// No annotation means the image contained no recognizable text.
	if imageResp.FullTextAnnotation == nil {
		return "", nil
	}
	return imageResp.FullTextAnnotation.Text, nil
}

// Close closes the underlying Vision client.
func (g *GoogleVisionService) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}
