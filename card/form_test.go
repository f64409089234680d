package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cardgen-ai/cardgen/model"
)

func TestForm_SettersTouchOnlyTheirField(t *testing.T) {
	form := NewForm()

	form.SetName("Кроссовки")
	assert.Equal(t, model.ProductInput{Name: "Кроссовки"}, form.Input())

	form.SetCategory("Спорттовары")
	assert.Equal(t, model.ProductInput{Name: "Кроссовки", Category: "Спорттовары"}, form.Input())

	form.SetFeatures("амортизация")
	assert.Equal(t, model.ProductInput{Name: "Кроссовки", Category: "Спорттовары", Features: "амортизация"}, form.Input())

	form.SetName("Кеды")
	assert.Equal(t, "Кеды", form.Input().Name)
	assert.Equal(t, "Спорттовары", form.Input().Category)
	assert.Equal(t, model.GenerationResult{}, form.Result())
}

func TestLogNotifier_Levels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	n := NewLogNotifier(zap.New(core))

	n.Notify(model.Notification{Title: "Готово!", Description: "ok", Severity: model.SeverityNormal})
	n.Notify(model.Notification{Title: "Ошибка", Description: "boom", Severity: model.SeverityDestructive})

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "Готово!", entries[0].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "boom", entries[1].ContextMap()["description"])
}

func TestNotifierFunc(t *testing.T) {
	var got model.Notification
	var n Notifier = NotifierFunc(func(note model.Notification) { got = note })

	n.Notify(model.Notification{Title: "t", Severity: model.SeverityNormal})
	assert.Equal(t, "t", got.Title)
}
