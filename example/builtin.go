package main

import (
	"github.com/go-theft-auto/render"
)

const builtinVertexShader = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aCoord;

uniform float position;
uniform mat4 model;

out vec2 Coord;

void main() {
    gl_Position = model * vec4(aPos.x, aPos.y + position * 0.3, 0.0, 1.0);
    Coord = aCoord;
}
`

const builtinFragmentShader = `
#version 410 core
in vec2 Coord;

uniform vec3 color;
uniform bool shaded;

out vec4 FragColor;

void main() {
    if (shaded) {
        FragColor = vec4(color * vec3(Coord, 1.0), 1.0);
    } else {
        FragColor = vec4(color, 1.0);
    }
}
`

// bowtie is five vertices of two 2-float attributes, position then a
// coordinate used for shading, drawn as two triangles meeting in the middle.
var bowtie = [...]float32{
	-0.5, 0.7, 0.0, 1.0,
	0.5, 0.7, 1.0, 1.0,
	0.0, 0.0, 0.5, 0.5,
	-0.5, -0.7, 0.0, 0.0,
	0.5, -0.7, 1.0, 0.0,
}

var bowtieIndices = [...]uint32{
	0, 1, 2,
	2, 4, 3,
}

// builtin draws the bowtie from a SmartObject with an inline shader.
type builtin struct {
	material  *render.Material
	obj       *render.SmartObject[float32]
	transform render.Transform
}

func newBuiltin(dev render.Device) (_ *builtin, err error) {
	shader, err := render.NewShader(dev, builtinVertexShader, builtinFragmentShader)
	if err != nil {
		return nil, err
	}
	obj := render.NewSmartObject[float32](dev, render.WithIndexBuffer())
	defer func() {
		if err != nil {
			obj.Delete()
			shader.Delete()
		}
	}()

	obj.Vertices().Push(bowtie[:]...)
	obj.Indices().Push(bowtieIndices[:]...)
	obj.Write()
	if err = obj.Layout().Append(render.Float, false, 2); err != nil {
		return nil, err
	}
	if err = obj.Layout().Append(render.Float, false, 2); err != nil {
		return nil, err
	}
	obj.CompileLayout()

	b := &builtin{
		material:  render.NewMaterial(shader),
		obj:       obj,
		transform: render.Identity(),
	}
	b.material.SetVec3("color", 1.0, 0.5, 0.2)
	b.material.SetBool("shaded", true)
	return b, nil
}

func (b *builtin) Draw(position float32) {
	b.transform.Rotation = position * 0.25
	b.material.Bind()
	b.material.SetFloat("position", position)
	b.transform.Apply(b.material, "model")
	b.obj.DrawAll()
}

func (b *builtin) Delete() {
	b.obj.Delete()
	b.material.Shader().Delete()
}
