package convert

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flprog-tools/ino2ubi/internal/block"
)

const convertSketch = `/* Blinks while counting sensor reads. */
#include <Servo.h>

int sensorValue = 0; //in
bool enabled = false; //par

void setup() {
  pinMode(13, OUTPUT);
  sensorValue = 0;
}

void loop() {
  if (enabled) {
    sensorValue = analogRead(A0);
  }
}
`

func TestConvert(t *testing.T) {
	res, err := Convert(convertSketch, Request{
		Metadata: block.Metadata{Name: "Blinker", Version: "1.3"},
	})
	require.NoError(t, err)

	t.Run("description falls back to leading comment", func(t *testing.T) {
		assert.Contains(t, res.Document, `sixx.name="string" sixx.type="String" sixx.env="Core" >Blinks while counting sensor reads.</sixx.object>`)
	})

	t.Run("analysis is exposed", func(t *testing.T) {
		require.NotNil(t, res.Analysis)
		require.Len(t, res.Analysis.Declarations, 2)
		assert.Equal(t, "sensorValue", res.Analysis.Declarations[0].Name)
	})

	t.Run("no notices on a clean sketch", func(t *testing.T) {
		assert.Empty(t, res.Notices)
	})
}

func TestConvertExplicitDescriptionWins(t *testing.T) {
	res, err := Convert(convertSketch, Request{
		Metadata: block.Metadata{Name: "Blinker", Description: "Hand-written.", Version: "1.3"},
	})
	require.NoError(t, err)
	assert.Contains(t, res.Document, `>Hand-written.</sixx.object>`)
	assert.NotContains(t, res.Document, ">Blinks while counting sensor reads.<")
}

func TestConvertAliasRenamesBodies(t *testing.T) {
	res, err := Convert(convertSketch, Request{
		Metadata: block.Metadata{Name: "Blinker", Version: "1.3"},
		Overrides: block.Overrides{
			Aliases: map[string]string{"sensorValue": "Sensor"},
		},
	})
	require.NoError(t, err)

	assert.Contains(t, res.Document, "Sensor = analogRead(A0);")
	assert.Contains(t, res.Document, "Sensor = 0;")
	assert.NotContains(t, res.Document, "sensorValue = analogRead")
	// The port itself is renamed too.
	assert.Contains(t, res.Document, `>Sensor</sixx.object>`)
}

func TestConvertAliasWholeWordOnly(t *testing.T) {
	src := strings.Replace(convertSketch,
		"sensorValue = analogRead(A0);",
		"sensorValue = analogRead(A0); sensorValueTotal++;", 1)
	res, err := Convert(src, Request{
		Metadata: block.Metadata{Name: "Blinker", Version: "1.3"},
		Overrides: block.Overrides{
			Aliases: map[string]string{"sensorValue": "Sensor"},
		},
	})
	require.NoError(t, err)
	assert.Contains(t, res.Document, "sensorValueTotal++;")
}

func TestConvertAliasLeavesAnalysisIntact(t *testing.T) {
	res, err := Convert(convertSketch, Request{
		Metadata: block.Metadata{Name: "Blinker", Version: "1.3"},
		Overrides: block.Overrides{
			Aliases: map[string]string{"sensorValue": "Sensor"},
		},
	})
	require.NoError(t, err)
	// Declarations keep their source names; only emitted code is rewritten.
	assert.Equal(t, "sensorValue", res.Analysis.Declarations[0].Name)
}

func TestConvertMissingName(t *testing.T) {
	_, err := Convert(convertSketch, Request{})
	assert.Error(t, err)
}

func TestConvertNoticesSurface(t *testing.T) {
	res, err := Convert("int x = 1;\nint x = 2;\nvoid setup() {}\nvoid loop() {}\n", Request{
		Metadata: block.Metadata{Name: "Dup", Version: "1.3"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.Notices)
	assert.Contains(t, res.Notices[0].Text, "duplicate")
}

func TestDumpAnalysis(t *testing.T) {
	res, err := Convert(convertSketch, Request{
		Metadata: block.Metadata{Name: "Blinker", Version: "1.3"},
	})
	require.NoError(t, err)

	data, err := res.DumpAnalysis()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"sensorValue"`)
	assert.Contains(t, string(data), `"declarations"`)
}
