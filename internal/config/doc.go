// Package config loads headless.json, the project file read by the headless
// command.
//
// Every section is optional; missing values fall back to defaults and
// command-line flags override what the file says.
//
//	{
//	  "gallery": {
//	    "host": "localhost",
//	    "port": 7070,
//	    "metricsPath": "/metrics",
//	    "readLimit": 65536
//	  },
//	  "scenarios": {
//	    "dir": "scenarios",
//	    "glob": "*.yaml"
//	  },
//	  "build": {
//	    "output": "dist",
//	    "pretty": true
//	  },
//	  "publish": {
//	    "bucket": "my-gallery",
//	    "prefix": "headless/",
//	    "region": "eu-west-1"
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.LoadFromWorkingDir()
//	if err != nil {
//	    return err
//	}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//	addr := cfg.GalleryAddress()
package config
