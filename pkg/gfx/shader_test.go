package gfx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjkrol/gokgl/pkg/gfx"
	"github.com/kjkrol/gokgl/pkg/gfx/gfxtest"
)

func TestCompileUnitReportsFailure(t *testing.T) {
	for _, kind := range []gfx.ShaderKind{gfx.VertexShader, gfx.FragmentShader} {
		t.Run(kind.String(), func(t *testing.T) {
			dev := gfxtest.NewDevice()
			dev.FailCompile = map[gfx.ShaderKind]string{kind: "syntax error"}

			handle, err := gfx.CompileUnit(dev, kind, "broken source")
			require.Error(t, err)
			assert.Zero(t, handle)

			var compileErr *gfx.CompileError
			require.ErrorAs(t, err, &compileErr)
			assert.Equal(t, kind, compileErr.Kind)
			assert.Equal(t, "syntax error", compileErr.Log)

			// The partially created unit must be released.
			assert.Zero(t, dev.LiveShaders())
		})
	}
}

func TestCompileUnitSuccess(t *testing.T) {
	dev := gfxtest.NewDevice()

	handle, err := gfx.CompileUnit(dev, gfx.VertexShader, "valid source")
	require.NoError(t, err)
	assert.NotZero(t, handle)
	assert.Equal(t, 1, dev.LiveShaders())
}

func TestBuildProgramShortCircuitsOnVertexFailure(t *testing.T) {
	dev := gfxtest.NewDevice()
	dev.FailCompile = map[gfx.ShaderKind]string{gfx.VertexShader: "bad vertex"}

	program, err := gfx.BuildProgram(dev, gfx.DefaultShaderSource())
	require.Error(t, err)
	assert.Nil(t, program)

	var compileErr *gfx.CompileError
	require.ErrorAs(t, err, &compileErr)
	assert.Equal(t, gfx.VertexShader, compileErr.Kind)

	// Nothing may be attached and the fragment unit is never compiled.
	assert.Empty(t, dev.Attached)
	assert.Equal(t, []gfx.ShaderKind{gfx.VertexShader}, dev.Compiled)
	assert.Zero(t, dev.LiveShaders())
	assert.Zero(t, dev.LivePrograms())
}

func TestBuildProgramReleasesVertexOnFragmentFailure(t *testing.T) {
	dev := gfxtest.NewDevice()
	dev.FailCompile = map[gfx.ShaderKind]string{gfx.FragmentShader: "bad fragment"}

	program, err := gfx.BuildProgram(dev, gfx.DefaultShaderSource())
	require.Error(t, err)
	assert.Nil(t, program)

	var compileErr *gfx.CompileError
	require.ErrorAs(t, err, &compileErr)
	assert.Equal(t, gfx.FragmentShader, compileErr.Kind)

	assert.Empty(t, dev.Attached)
	assert.Zero(t, dev.LiveShaders())
	assert.Zero(t, dev.LivePrograms())
}

func TestBuildProgramSuccess(t *testing.T) {
	dev := gfxtest.NewDevice()

	program, err := gfx.BuildProgram(dev, gfx.DefaultShaderSource())
	require.NoError(t, err)
	require.NotNil(t, program)
	assert.True(t, program.Validated)

	// Both units attached to the one program, then released after linking.
	require.Len(t, dev.Attached, 1)
	assert.Len(t, dev.Attached[program.Handle()], 2)
	assert.Zero(t, dev.LiveShaders())

	// The program stays independently usable.
	program.Use()
	assert.Equal(t, program.Handle(), dev.ActiveProgram)

	program.Delete()
	assert.Zero(t, dev.LivePrograms())
}

func TestBuildProgramLinkFailure(t *testing.T) {
	dev := gfxtest.NewDevice()
	dev.FailLink = "unresolved varying"

	program, err := gfx.BuildProgram(dev, gfx.DefaultShaderSource())
	require.Error(t, err)
	assert.Nil(t, program)

	var linkErr *gfx.LinkError
	require.ErrorAs(t, err, &linkErr)
	assert.Equal(t, "unresolved varying", linkErr.Log)

	assert.Zero(t, dev.LiveShaders())
	assert.Zero(t, dev.LivePrograms())
}

func TestBuildProgramValidateFailureIsAdvisory(t *testing.T) {
	dev := gfxtest.NewDevice()
	dev.FailValidate = "incomplete sampler state"

	program, err := gfx.BuildProgram(dev, gfx.DefaultShaderSource())
	require.NoError(t, err)
	require.NotNil(t, program)
	assert.False(t, program.Validated)
	assert.Equal(t, 1, dev.LivePrograms())
}

func TestProgramDeleteIsIdempotent(t *testing.T) {
	dev := gfxtest.NewDevice()

	program, err := gfx.BuildProgram(dev, gfx.DefaultShaderSource())
	require.NoError(t, err)

	program.Delete()
	program.Delete()
	assert.Zero(t, dev.LivePrograms())
}
