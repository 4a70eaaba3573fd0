package controllers

import (
	"io"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"

	"github.com/SandeshLive/Sandesh/app/models"
	"github.com/SandeshLive/Sandesh/app/repository"
	"github.com/SandeshLive/Sandesh/internal/pkg/content"
	"github.com/SandeshLive/Sandesh/internal/pkg/imageprocessor"
	"github.com/SandeshLive/Sandesh/internal/pkg/middleware"
	"github.com/SandeshLive/Sandesh/internal/pkg/slug"
	"github.com/SandeshLive/Sandesh/internal/pkg/storage"
	"github.com/SandeshLive/Sandesh/internal/pkg/upload"
)

// NewsController handles the public and admin news endpoints. It owns the
// whole ingestion pipeline: multipart policy checks, file storage, inline
// base64 extraction, slug derivation and referential category validation.
type NewsController struct {
	newsRepo     repository.NewsRepository
	categoryRepo repository.CategoryRepository
	store        *storage.LocalStore
}

// NewNewsController creates the controller with its dependencies.
func NewNewsController(newsRepo repository.NewsRepository, categoryRepo repository.CategoryRepository, store *storage.LocalStore) *NewsController {
	return &NewsController{
		newsRepo:     newsRepo,
		categoryRepo: categoryRepo,
		store:        store,
	}
}

// HandleList serves GET /api/news with category/search filters and
// pagination. Anonymous callers only see published articles; a valid bearer
// token lifts the filter.
func (nc *NewsController) HandleList(c *fiber.Ctx) error {
	page, limit, offset := parsePagination(c)

	filter := repository.NewsFilter{
		Category:      c.Query("category"),
		Search:        c.Query("search"),
		PublishedOnly: middleware.AdminFromContext(c) == nil,
	}

	news, err := nc.newsRepo.List(filter, offset, limit)
	if err != nil {
		fiberlog.Errorf("news list failed: %v", err)
		return respondServerError(c)
	}
	total, err := nc.newsRepo.Count(filter)
	if err != nil {
		fiberlog.Errorf("news count failed: %v", err)
		return respondServerError(c)
	}

	return respondData(c, fiber.StatusOK, fiber.Map{
		"news":       news,
		"pagination": paginationMap(page, limit, total),
	})
}

// HandleGetByID serves GET /api/news/:id, published-only for anonymous
// callers.
func (nc *NewsController) HandleGetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondNotFound(c, "समाचार नहीं मिला")
	}

	var news *models.News
	if middleware.AdminFromContext(c) != nil {
		news, err = nc.newsRepo.GetByID(id)
	} else {
		news, err = nc.newsRepo.GetPublishedByID(id)
	}
	if err != nil {
		if isNotFound(err) {
			return respondNotFound(c, "समाचार नहीं मिला")
		}
		fiberlog.Errorf("news get failed: %v", err)
		return respondServerError(c)
	}

	return respondData(c, fiber.StatusOK, news)
}

// HandleGetBySlug serves GET /api/news/slug/:slug.
func (nc *NewsController) HandleGetBySlug(c *fiber.Ctx) error {
	slugParam := c.Params("slug")

	var news *models.News
	var err error
	if middleware.AdminFromContext(c) != nil {
		news, err = nc.newsRepo.GetBySlug(slugParam)
	} else {
		news, err = nc.newsRepo.GetPublishedBySlug(slugParam)
	}
	if err != nil {
		if isNotFound(err) {
			return respondNotFound(c, "समाचार नहीं मिला")
		}
		fiberlog.Errorf("news get by slug failed: %v", err)
		return respondServerError(c)
	}

	return respondData(c, fiber.StatusOK, news)
}

// HandleCreate serves POST /api/news (multipart).
func (nc *NewsController) HandleCreate(c *fiber.Ctx) error {
	if err := nc.checkFileCount(c); err != nil {
		return err
	}

	news := &models.News{
		UUID:             uuid.NewString(),
		Title:            strings.TrimSpace(c.FormValue("title")),
		ShortDescription: strings.TrimSpace(c.FormValue("shortDescription")),
		Description:      c.FormValue("description"),
		Category:         strings.TrimSpace(c.FormValue("category")),
		VideoURL:         strings.TrimSpace(c.FormValue("videoUrl")),
		IsPublished:      parseBoolField(c.FormValue("isPublished")),
	}

	if err := nc.applySlug(c, news, 0); err != nil {
		return err
	}

	if fh := firstFile(c, "featuredImage", "image"); fh != nil {
		rel, err := nc.saveImage(c, fh)
		if err != nil {
			return err
		}
		news.ImageURL = rel
		news.SocialImageURL = nc.socialVariant(rel)
	}

	if fh := firstFile(c, "videoFile"); fh != nil {
		rel, err := nc.saveVideo(c, fh)
		if err != nil {
			return err
		}
		news.VideoFileURL = rel
	}

	extracted, err := content.ExtractInlineImages(news.Description, nc.store)
	if err != nil {
		fiberlog.Errorf("inline image extraction failed: %v", err)
		return respondError(c, fiber.StatusInternalServerError, "छवि प्रसंस्करण में त्रुटि")
	}
	news.Description = extracted

	if err := nc.validateArticle(c, news); err != nil {
		return err
	}

	if err := nc.newsRepo.Create(news); err != nil {
		fiberlog.Errorf("news create failed: %v", err)
		return respondServerError(c)
	}

	return respondMessage(c, fiber.StatusCreated, "समाचार सफलतापूर्वक बनाया गया", news)
}

// HandleUpdate serves PUT /api/news/:id (multipart). Replaced media files
// are removed from storage.
func (nc *NewsController) HandleUpdate(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondNotFound(c, "समाचार नहीं मिला")
	}

	news, err := nc.newsRepo.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			return respondNotFound(c, "समाचार नहीं मिला")
		}
		fiberlog.Errorf("news load failed: %v", err)
		return respondServerError(c)
	}

	if err := nc.checkFileCount(c); err != nil {
		return err
	}

	news.Title = strings.TrimSpace(c.FormValue("title"))
	news.ShortDescription = strings.TrimSpace(c.FormValue("shortDescription"))
	news.Description = c.FormValue("description")
	news.Category = strings.TrimSpace(c.FormValue("category"))
	news.VideoURL = strings.TrimSpace(c.FormValue("videoUrl"))
	if v := c.FormValue("isPublished"); v != "" {
		news.IsPublished = parseBoolField(v)
	}

	if err := nc.applySlug(c, news, news.ID); err != nil {
		return err
	}

	// Replaced media is unlinked only after the update is known to succeed;
	// a rejected request must leave the stored article's files intact.
	var replaced []string

	if fh := firstFile(c, "featuredImage", "image"); fh != nil {
		rel, err := nc.saveImage(c, fh)
		if err != nil {
			return err
		}
		replaced = append(replaced, news.ImageURL, news.SocialImageURL)
		news.ImageURL = rel
		news.SocialImageURL = nc.socialVariant(rel)
	}

	if fh := firstFile(c, "videoFile"); fh != nil {
		rel, err := nc.saveVideo(c, fh)
		if err != nil {
			return err
		}
		replaced = append(replaced, news.VideoFileURL)
		news.VideoFileURL = rel
	}

	extracted, err := content.ExtractInlineImages(news.Description, nc.store)
	if err != nil {
		fiberlog.Errorf("inline image extraction failed: %v", err)
		return respondError(c, fiber.StatusInternalServerError, "छवि प्रसंस्करण में त्रुटि")
	}
	news.Description = extracted

	if err := nc.validateArticle(c, news); err != nil {
		return err
	}

	if err := nc.newsRepo.Update(news); err != nil {
		fiberlog.Errorf("news update failed: %v", err)
		return respondServerError(c)
	}

	nc.deleteStored(replaced...)

	return respondMessage(c, fiber.StatusOK, "समाचार सफलतापूर्वक अपडेट किया गया", news)
}

// HandleDelete serves DELETE /api/news/:id and cascades the file deletes.
func (nc *NewsController) HandleDelete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondNotFound(c, "समाचार नहीं मिला")
	}

	news, err := nc.newsRepo.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			return respondNotFound(c, "समाचार नहीं मिला")
		}
		fiberlog.Errorf("news load failed: %v", err)
		return respondServerError(c)
	}

	nc.deleteStored(news.ImageURL, news.SocialImageURL, news.VideoFileURL)

	if err := nc.newsRepo.Delete(news.ID); err != nil {
		fiberlog.Errorf("news delete failed: %v", err)
		return respondServerError(c)
	}

	return respondMessage(c, fiber.StatusOK, "समाचार सफलतापूर्वक हटाया गया", nil)
}

// HandleUploadImage serves POST /api/news/upload-image for the rich-text
// editor: one image in, its stored URL out.
func (nc *NewsController) HandleUploadImage(c *fiber.Ctx) error {
	fh := firstFile(c, "image")
	if fh == nil {
		return respondError(c, fiber.StatusBadRequest, "कोई फाइल अपलोड नहीं हुई")
	}

	rel, err := nc.saveImage(c, fh)
	if err != nil {
		return err
	}

	return respondMessage(c, fiber.StatusOK, "छवि सफलतापूर्वक अपलोड हुई", fiber.Map{
		"url":      rel,
		"filename": strings.TrimPrefix(rel, storage.PublicPrefix+"/"),
	})
}

// --- helpers ---

func (nc *NewsController) validateArticle(c *fiber.Ctx, news *models.News) error {
	if err := news.Validate(); err != nil {
		return respondValidationError(c, validationMessages(err))
	}

	exists, err := nc.categoryRepo.NameExists(news.Category)
	if err != nil {
		fiberlog.Errorf("category check failed: %v", err)
		return respondServerError(c)
	}
	if !exists {
		return respondValidationError(c, []string{"अमान्य श्रेणी - यह श्रेणी मौजूद नहीं है"})
	}
	return nil
}

// applySlug normalizes or derives the slug and enforces sparse uniqueness.
// Collisions surface as a 400 to the admin; there is no auto-suffixing.
func (nc *NewsController) applySlug(c *fiber.Ctx, news *models.News, exceptID uint) error {
	raw := strings.TrimSpace(c.FormValue("slug"))

	var derived string
	switch {
	case raw != "":
		derived = slug.Make(raw)
	case exceptID == 0:
		derived = slug.Make(news.Title)
	default:
		// update without a slug field keeps the existing one
		return nil
	}

	if derived == "" {
		// e.g. a purely Devanagari title; the article stays slug-less
		if exceptID == 0 {
			news.SetSlug("")
		}
		return nil
	}

	var exists bool
	var err error
	if exceptID == 0 {
		exists, err = nc.newsRepo.SlugExists(derived)
	} else {
		exists, err = nc.newsRepo.SlugExistsExceptID(derived, exceptID)
	}
	if err != nil {
		fiberlog.Errorf("slug check failed: %v", err)
		return respondServerError(c)
	}
	if exists {
		return respondValidationError(c, []string{"स्लग पहले से उपयोग में है"})
	}

	news.SetSlug(derived)
	return nil
}

func (nc *NewsController) checkFileCount(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	n := 0
	for _, files := range form.File {
		n += len(files)
	}
	if err := upload.CheckFileCount(n); err != nil {
		return respondError(c, fiber.StatusBadRequest, err.Error())
	}
	return nil
}

func (nc *NewsController) saveImage(c *fiber.Ctx, fh *multipart.FileHeader) (string, error) {
	return nc.savePart(c, fh, func(head []byte) error {
		_, err := upload.ValidateImage(fh.Filename, head, fh.Size)
		return err
	})
}

func (nc *NewsController) saveVideo(c *fiber.Ctx, fh *multipart.FileHeader) (string, error) {
	return nc.savePart(c, fh, func(head []byte) error {
		_, err := upload.ValidateVideo(fh.Filename, head, fh.Size)
		return err
	})
}

// savePart sniffs the part, applies the policy check and streams it into the
// store. Policy violations answer 400 with the violation's own message.
func (nc *NewsController) savePart(c *fiber.Ctx, fh *multipart.FileHeader, validate func(head []byte) error) (string, error) {
	f, err := fh.Open()
	if err != nil {
		fiberlog.Errorf("open multipart file failed: %v", err)
		return "", respondServerError(c)
	}
	defer f.Close()

	head := make([]byte, 512)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		fiberlog.Errorf("sniff multipart file failed: %v", err)
		return "", respondServerError(c)
	}
	if err := validate(head[:n]); err != nil {
		if v, ok := upload.AsViolation(err); ok {
			return "", respondError(c, fiber.StatusBadRequest, v.Message)
		}
		return "", respondError(c, fiber.StatusBadRequest, err.Error())
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		fiberlog.Errorf("rewind multipart file failed: %v", err)
		return "", respondServerError(c)
	}

	rel, err := nc.store.Save(f, fh.Filename)
	if err != nil {
		fiberlog.Errorf("store upload failed: %v", err)
		return "", respondServerError(c)
	}
	return rel, nil
}

// socialVariant is best-effort; a failed resize only costs the dedicated
// preview image.
func (nc *NewsController) socialVariant(rel string) string {
	variant, err := imageprocessor.GenerateSocialVariant(nc.store, rel)
	if err != nil {
		fiberlog.Warnf("social variant failed for %s: %v", rel, err)
		return ""
	}
	return variant
}

func (nc *NewsController) deleteStored(relPaths ...string) {
	for _, rel := range relPaths {
		if rel == "" {
			continue
		}
		if err := nc.store.Delete(rel); err != nil {
			fiberlog.Warnf("delete stored file %s failed: %v", rel, err)
		}
	}
}

func firstFile(c *fiber.Ctx, fields ...string) *multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	for _, field := range fields {
		if files := form.File[field]; len(files) > 0 {
			return files[0]
		}
	}
	return nil
}

func parseBoolField(v string) bool {
	return v == "true" || v == "1"
}
