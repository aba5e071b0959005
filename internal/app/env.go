package app

import "context"

// EnvCreate resolves the environment path and builds it when missing.
func (s Service) EnvCreate(ctx context.Context, req EnvRequest) (EnvResult, error) {
	path, err := s.Environment.ResolvePath(req.Name, req.BaseDir)
	if err != nil {
		return EnvResult{}, err
	}
	if err := s.Environment.Create(ctx, path); err != nil {
		return EnvResult{}, err
	}
	return EnvResult{
		Path:    path,
		Exists:  true,
		Manager: s.Environment.DetectManager(path),
		Current: s.Environment.CurrentPath(),
	}, nil
}

// EnvInfo resolves the environment path and reports what is there.
func (s Service) EnvInfo(req EnvRequest) (EnvResult, error) {
	path, err := s.Environment.ResolvePath(req.Name, req.BaseDir)
	if err != nil {
		return EnvResult{}, err
	}
	return EnvResult{
		Path:    path,
		Exists:  s.Environment.Exists(path),
		Manager: s.Environment.DetectManager(path),
		Current: s.Environment.CurrentPath(),
	}, nil
}
