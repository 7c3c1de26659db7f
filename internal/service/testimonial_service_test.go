package service

import (
	"context"
	"testing"
	"time"

	"github.com/studiofolio/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestimonialListOrdersFeaturedFirst(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewTestimonialService(gdb)
	ctx := context.Background()

	t1 := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(24 * time.Hour)
	a := db.Testimonial{ClientName: "A", Content: "lovely", Featured: false, CreatedAt: t2}
	b := db.Testimonial{ClientName: "B", Content: "stunning", Featured: true, CreatedAt: t1}
	require.NoError(t, gdb.Create(&a).Error)
	require.NoError(t, gdb.Create(&b).Error)

	list, err := svc.List(ctx, TestimonialFilter{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "B", list[0].ClientName)
	assert.Equal(t, "A", list[1].ClientName)

	onlyPlain, err := svc.List(ctx, TestimonialFilter{Featured: boolPtr(false)})
	require.NoError(t, err)
	require.Len(t, onlyPlain, 1)
	assert.Equal(t, "A", onlyPlain[0].ClientName)

	limited, err := svc.List(ctx, TestimonialFilter{Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "B", limited[0].ClientName)
}

func TestTestimonialLifecycle(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewTestimonialService(gdb)
	ctx := context.Background()

	created, err := svc.Create(ctx, TestimonialInput{
		ClientName: "Maya",
		ClientRole: strPtr("Bride"),
		Content:    "Captured every moment.",
		Rating:     intPtr(5),
		Featured:   true,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	updated, err := svc.Update(ctx, created.ID, TestimonialInput{ClientName: "Maya K.", Content: "Still amazing.", Rating: intPtr(9)})
	require.NoError(t, err)
	assert.Equal(t, "Maya K.", updated.ClientName)
	assert.Nil(t, updated.ClientRole)
	require.NotNil(t, updated.Rating)
	assert.Equal(t, 9, *updated.Rating, "rating range is not enforced server-side")
	assert.False(t, updated.Featured)

	_, err = svc.Update(ctx, 4242, TestimonialInput{ClientName: "x", Content: "y"})
	assert.ErrorIs(t, err, ErrTestimonialNotFound)

	require.NoError(t, svc.Delete(ctx, created.ID))
	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrTestimonialNotFound)
}
