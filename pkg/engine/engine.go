package engine

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/ragbendra/AwwwardsREMS-sub000/internal/logger"
	"github.com/ragbendra/AwwwardsREMS-sub000/internal/util"
	"github.com/ragbendra/AwwwardsREMS-sub000/pkg/config"
)

// focusDepthThreshold is how close (in world units) an object's depth
// must be to the camera's look-at depth to gain focus.
const focusDepthThreshold = 6.0

// Engine wires the whole showcase together: window, scroll pipeline,
// asset gate, camera, scene content, renderer, overlay and audio.
type Engine struct {
	window *glfw.Window
	config *config.Config
	log    *logger.Logger

	sceneMap *SceneMap
	adapter  ScrollAdapter
	manager  *ScrollManager
	store    *ScrollStore
	gate     *AssetGate
	heroLock *HeroLock
	camera   *CameraController
	scene    *ShowcaseScene
	renderer *Renderer
	overlay  *Overlay
	input    *InputHandler
	audio    *AudioEngine
	loop     *RenderLoop

	elapsed float64
}

// NewEngine creates the showcase engine. A malformed scene map is fatal
// here; nothing downstream tolerates a partial map.
func NewEngine(cfg *config.Config, log *logger.Logger) (*Engine, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %v", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(
		cfg.Graphics.Width,
		cfg.Graphics.Height,
		cfg.Graphics.Title,
		nil,
		nil,
	)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %v", err)
	}

	window.MakeContextCurrent()
	if cfg.Graphics.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %v", err)
	}

	sceneMap, err := NewSceneMap(cfg.Scenes)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("invalid scene map: %v", err)
	}

	adapter := NewScrollAdapter(window, cfg.Scroll, float64(cfg.Graphics.Height))
	manager := GetScrollManager(adapter, sceneMap, cfg.Scroll, log)
	store := NewScrollStore(manager)
	gate := GetAssetGate(log)

	renderer, err := NewRenderer(cfg.Graphics.Width, cfg.Graphics.Height, log)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize renderer: %v", err)
	}

	scene := NewShowcaseScene(sceneMap)

	hero, _ := sceneMap.Scene(0)
	aspect := float64(cfg.Graphics.Width) / float64(cfg.Graphics.Height)
	camera, err := NewCameraController(cfg.Camera, aspect, hero.End)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize camera: %v", err)
	}

	e := &Engine{
		window:   window,
		config:   cfg,
		log:      log,
		sceneMap: sceneMap,
		adapter:  adapter,
		manager:  manager,
		store:    store,
		gate:     gate,
		camera:   camera,
		scene:    scene,
		renderer: renderer,
		overlay:  NewOverlay(store, sceneMap, window, cfg.Graphics.Title),
		input:    NewInputHandler(window),
		audio:    NewAudioEngine(cfg.Audio, log),
		loop:     NewRenderLoop(window, cfg.Graphics.FrameRate),
	}

	gate.SetFrameScheduler(e.loop.Defer)
	gate.AttachWarmup(func() error {
		return e.renderer.WarmUp(e.scene, e.camera)
	})

	e.heroLock = NewHeroLock(manager, gate,
		time.Duration(cfg.Preloader.MinHeroDwellMS)*time.Millisecond, log)
	e.heroLock.SetFrameScheduler(e.loop.Defer)

	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		e.renderer.Resize(width, height)
		e.camera.Resize(width, height)
	})

	return e, nil
}

// Run locks the hero, starts asset loading and drives the frame loop
// until quit.
func (e *Engine) Run() {
	e.heroLock.Engage()
	e.startAssetLoad()

	e.log.Info("Engine initialized, starting frame loop...")
	e.loop.Run(e.frame)

	e.cleanup()
}

// startAssetLoad decodes configured models off the main thread and
// attaches them via the deferred queue. The safety timeout
// force-completes the gate if nothing ever reports, so the preloader
// cannot hang; ForceComplete is a no-op once the gate is complete.
func (e *Engine) startAssetLoad() {
	timeout := time.Duration(e.config.Preloader.ForceCompleteTimeoutMS) * time.Millisecond
	time.AfterFunc(timeout, e.gate.ForceComplete)

	paths := e.config.Assets.Models
	if len(paths) == 0 {
		e.loop.Defer(e.gate.ForceComplete)
		return
	}

	loader := NewModelLoader(e.gate, e.log)
	go func() {
		meshes := loader.LoadAll(paths)
		e.loop.Defer(func() {
			for i, mesh := range meshes {
				mesh.Position = Vector3{X: float64(i*9 - 9), Y: 0, Z: -28}
				e.scene.AddMesh(mesh, &PropertyInfo{
					Name:     mesh.Name,
					Location: "gallery",
					PriceUSD: 1250000 + i*400000,
					AreaSqFt: 2200 + i*600,
				})
			}
		})
	}()
}

// frame is the per-frame pipeline: input → scroll tick/publish → scene
// and camera update → render. Strictly this order, every frame.
func (e *Engine) frame(dt float64) {
	e.elapsed += dt

	e.processInput()

	e.manager.Tick(dt)
	state := e.manager.State()

	e.scene.Update(e.elapsed, state.Progress)
	e.camera.Update(dt, state)
	e.audio.SetIntensity(0.25 + 0.75*util.Smoothstep(0.0, 0.4, state.Progress))

	var focused *SceneObject
	if e.gate.IsComplete() {
		focused = e.scene.NearestAtDepth(e.camera.Target().Z, focusDepthThreshold)
	}

	atm := e.scene.AtmosphereAt(state.Progress)
	e.renderer.BeginFrame(atm)
	if e.gate.IsComplete() {
		e.renderer.RenderScene(e.scene, e.camera, atm)
	}

	e.overlay.Update(focused)
	e.renderer.RenderOverlay(e.overlay.Quads(e.gate.State(), state, focused != nil))
}

// processInput polls keys and routes navigation intents to the manager
func (e *Engine) processInput() {
	e.input.Update()

	if e.input.QuitRequested() {
		e.loop.Stop()
		return
	}

	if idx, ok := e.input.JumpRequest(); ok {
		if err := e.manager.ScrollToScene(idx); err != nil {
			e.log.Debugf("ignoring scene jump: %v", err)
		}
	}

	if e.input.AudioToggleRequested() {
		if e.audio.Toggle() {
			e.log.Info("ambient audio on")
		} else {
			e.log.Info("ambient audio off")
		}
	}

	if e.input.HomeRequested() {
		e.manager.ScrollTo(0, ScrollToOptions{Duration: e.config.Scroll.ScrollToDuration})
	}
	if e.input.EndRequested() {
		e.manager.ScrollTo(e.adapter.Limit(), ScrollToOptions{Duration: e.config.Scroll.ScrollToDuration})
	}
}

// cleanup tears everything down in reverse dependency order
func (e *Engine) cleanup() {
	e.log.Info("Shutting down showcase...")

	e.heroLock.Cancel()
	e.audio.Shutdown()
	e.overlay.Dispose()
	e.scene.Dispose()
	e.renderer.Dispose()
	e.manager.Destroy()
	glfw.Terminate()
}
