package engine

// Shader sources for the showcase renderer

// Vertex shader for scene meshes
const sceneVertexShaderSource = `
#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

out vec3 FragPos;
out vec3 Normal;

void main() {
    vec4 world = model * vec4(aPos, 1.0);
    FragPos = world.xyz;
    Normal = mat3(model) * aNormal;
    gl_Position = projection * view * world;
}
`

// Fragment shader for scene meshes: single directional light plus
// exponential distance fog blended toward the atmosphere color.
const sceneFragmentShaderSource = `
#version 410 core
in vec3 FragPos;
in vec3 Normal;

out vec4 FragColor;

uniform vec3 objectColor;
uniform vec3 fogColor;
uniform float fogDensity;
uniform vec3 cameraPos;

const vec3 lightDir = normalize(vec3(0.4, 1.0, 0.3));

void main() {
    vec3 n = normalize(Normal);
    float diffuse = max(dot(n, lightDir), 0.0);
    vec3 lit = objectColor * (0.35 + 0.65 * diffuse);

    float dist = length(FragPos - cameraPos);
    float fog = 1.0 - exp(-fogDensity * fogDensity * dist * dist);
    fog = clamp(fog, 0.0, 1.0);

    FragColor = vec4(mix(lit, fogColor, fog), 1.0);
}
`

// Vertex shader for overlay quads: a unit quad positioned by a rect
// uniform in normalized device coordinates.
const overlayVertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;

uniform vec4 rect; // x, y, w, h in NDC

void main() {
    vec2 pos = rect.xy + aPos * rect.zw;
    gl_Position = vec4(pos, 0.0, 1.0);
}
`

// Fragment shader for overlay quads
const overlayFragmentShaderSource = `
#version 410 core
out vec4 FragColor;

uniform vec4 quadColor;

void main() {
    FragColor = quadColor;
}
`
