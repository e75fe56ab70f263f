package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balasagoth/mi-supermercado/internal/design/domain"
)

type memoryDesignRepo struct {
	design *domain.SiteDesign
}

func (r *memoryDesignRepo) Get() (*domain.SiteDesign, error) {
	if r.design == nil {
		return nil, domain.ErrNotFound
	}
	copy := *r.design
	return &copy, nil
}

func (r *memoryDesignRepo) Create(design *domain.SiteDesign) error {
	if r.design != nil {
		return domain.ErrSingletonExists
	}
	design.ID = 1
	r.design = design
	return nil
}

func (r *memoryDesignRepo) Update(design *domain.SiteDesign) error {
	r.design = design
	return nil
}

func strPtr(s string) *string { return &s }

func TestUpdateDesign_FirstSaveCreatesSingleton(t *testing.T) {
	repo := &memoryDesignRepo{}
	handler := NewUpdateDesignHandler(repo)

	design, err := handler.Handle(UpdateDesignCommand{PrimaryColor: strPtr("#FF0000")})
	require.NoError(t, err)
	assert.Equal(t, "#FF0000", design.PrimaryColor)
	// Unset fields keep their defaults
	assert.Equal(t, domain.DefaultFontFamily, design.FontFamily)
	require.NotNil(t, repo.design)
}

func TestUpdateDesign_PartialUpdateKeepsOtherFields(t *testing.T) {
	repo := &memoryDesignRepo{design: &domain.SiteDesign{
		ID:           1,
		PrimaryColor: "#112233",
		FontFamily:   "Georgia",
		LogoURL:      "https://cdn.example/logo.png",
	}}
	handler := NewUpdateDesignHandler(repo)

	design, err := handler.Handle(UpdateDesignCommand{FontFamily: strPtr("Helvetica")})
	require.NoError(t, err)
	assert.Equal(t, "#112233", design.PrimaryColor)
	assert.Equal(t, "Helvetica", design.FontFamily)
	assert.Equal(t, "https://cdn.example/logo.png", design.LogoURL)
}

func TestUpdateDesign_RejectsEmptyRequiredFields(t *testing.T) {
	repo := &memoryDesignRepo{design: &domain.SiteDesign{ID: 1, PrimaryColor: "#112233", FontFamily: "Georgia"}}
	handler := NewUpdateDesignHandler(repo)

	_, err := handler.Handle(UpdateDesignCommand{PrimaryColor: strPtr("")})
	assert.Error(t, err)

	_, err = handler.Handle(UpdateDesignCommand{FontFamily: strPtr("")})
	assert.Error(t, err)

	// Clearing optional URLs is allowed
	design, err := handler.Handle(UpdateDesignCommand{LogoURL: strPtr("")})
	require.NoError(t, err)
	assert.Empty(t, design.LogoURL)
}
