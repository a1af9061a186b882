// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package hlsl pretty-prints a parsed HLSL compilation unit (an *ast.Tree)
// back to normalized HLSL text, per §4.6. Two modes select how cbuffers and
// sampler objects are rendered:
//
//   - LegacyMode unwraps cbuffer/tbuffer fields into individual global
//     declarations and leaves sampler2D/samplerCUBE objects as combined
//     texture-and-sampler declarations, matching shader model 3 targets
//     that have neither constant buffers nor separate sampler objects.
//   - ModernMode keeps cbuffer/tbuffer blocks as written and splits each
//     sampler object into a paired Texture2D/TextureCube + SamplerState
//     declaration, rewriting tex2D/texCUBE calls on it into a .Sample()
//     method call.
package hlsl
