// Package loader reads configurations from YAML or TOML files. The file
// shape mirrors the in-Go cnfg.Config: section type → section id → spec,
// with two reserved names: a top-level "global" mapping for run-level
// kwarg substitutions and an id "global" inside a section for
// section-level ones.
//
//	global:
//	  seed: 7
//	dataset:
//	  train:
//	    priority: 0
//	    steps:
//	      - name: load
//	        kwargs: {path: train.csv}
//	model:
//	  default:
//	    producer: sgd
//	    steps:
//	      - name: fit
//	        kwargs: {data: dataset__train, seed: 0}
//
// A spec's "producer" is a registry name; kwarg values of the form
// "type__id" are store references resolved by the engine. Spec keys the
// loader does not recognize become spec-level globals, so shared kwargs
// can be written inline.
//
//	cfg, global, err := loader.LoadFile("run.yaml")
//	objects, err := e.Run(ctx, cfg, &engine.RunOptions{Global: global})
package loader
