// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// SceneVertexShader transforms scene meshes into clip space.
//
//go:embed scene.vert
var SceneVertexShader string

// SceneFragmentShader shades scene meshes with flat colour or texture plus
// Phong lighting from up to eight lights.
//
//go:embed scene.frag
var SceneFragmentShader string
