package controllers

import (
	"testing"

	"fiber-lims/models"

	"github.com/stretchr/testify/assert"
)

func TestOrderTransitions(t *testing.T) {
	allowed := func(from, to string) bool {
		for _, next := range validOrderTransitions[from] {
			if next == to {
				return true
			}
		}
		return false
	}

	assert.True(t, allowed(models.OrderStatusDraft, models.OrderStatusReceived))
	assert.True(t, allowed(models.OrderStatusReceived, models.OrderStatusTesting))
	assert.True(t, allowed(models.OrderStatusTesting, models.OrderStatusCompleted))

	assert.False(t, allowed(models.OrderStatusDraft, models.OrderStatusTesting))
	assert.False(t, allowed(models.OrderStatusDraft, models.OrderStatusCompleted))
	assert.False(t, allowed(models.OrderStatusCompleted, models.OrderStatusDraft))
	assert.False(t, allowed(models.OrderStatusReceived, models.OrderStatusDraft))
}
