package kubejob

import (
	"fmt"
	"strings"

	batchv1 "k8s.io/api/batch/v1"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/jervis-ai/jervis-core/pkg/config"
)

const workspaceVolume = "workspace"

// JobName derives a DNS-safe Job name from the agent type and task ID.
func JobName(spec DispatchSpec) string {
	id := strings.ToLower(spec.Task.ID)
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("jervis-%s-%s", spec.AgentType, id)
}

// BuildJob builds the one-container Job manifest for a coding-agent run.
// backoffLimit is 0 because a failed agent run must surface to the engine,
// never silently retry against a half-modified workspace.
func BuildJob(cfg *config.KubernetesConfig, spec DispatchSpec) (*batchv1.Job, error) {
	image, ok := cfg.AgentImages[string(spec.AgentType)]
	if !ok {
		return nil, fmt.Errorf("no image configured for agent type %q", spec.AgentType)
	}

	env := []corev1.EnvVar{
		{Name: "JERVIS_TASK_ID", Value: spec.Task.ID},
		{Name: "JERVIS_THREAD_ID", Value: spec.ThreadID},
		{Name: "JERVIS_WORKSPACE", Value: cfg.WorkspaceMountPath},
		{Name: "JERVIS_ALLOW_GIT", Value: fmt.Sprintf("%t", spec.AllowGit)},
	}
	if spec.SigningKey != "" {
		env = append(env, corev1.EnvVar{Name: "JERVIS_GIT_SIGNING_KEY", Value: spec.SigningKey})
	}

	backoffLimit := int32(0)
	ttl := cfg.TTLSecondsAfterFinished
	deadline := spec.Timeout

	job := &batchv1.Job{
		ObjectMeta: metav1.ObjectMeta{
			Name:      JobName(spec),
			Namespace: cfg.Namespace,
			Labels: map[string]string{
				"app.kubernetes.io/managed-by": "jervis",
				"jervis.ai/agent-type":         string(spec.AgentType),
				"jervis.ai/task-id":            spec.Task.ID,
			},
		},
		Spec: batchv1.JobSpec{
			BackoffLimit:            &backoffLimit,
			ActiveDeadlineSeconds:   &deadline,
			TTLSecondsAfterFinished: &ttl,
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{
					Labels: map[string]string{
						"jervis.ai/agent-type": string(spec.AgentType),
						"jervis.ai/task-id":    spec.Task.ID,
					},
				},
				Spec: corev1.PodSpec{
					RestartPolicy: corev1.RestartPolicyNever,
					Containers: []corev1.Container{{
						Name:  "agent",
						Image: image,
						Env:   env,
						Resources: corev1.ResourceRequirements{
							Requests: corev1.ResourceList{
								corev1.ResourceCPU:    resource.MustParse("500m"),
								corev1.ResourceMemory: resource.MustParse("1Gi"),
							},
							Limits: corev1.ResourceList{
								corev1.ResourceCPU:    resource.MustParse("2"),
								corev1.ResourceMemory: resource.MustParse("4Gi"),
							},
						},
						VolumeMounts: []corev1.VolumeMount{{
							Name:      workspaceVolume,
							MountPath: cfg.WorkspaceMountPath,
							SubPath:   spec.Task.WorkspacePath,
						}},
					}},
					Volumes: []corev1.Volume{{
						Name: workspaceVolume,
						VolumeSource: corev1.VolumeSource{
							PersistentVolumeClaim: &corev1.PersistentVolumeClaimVolumeSource{
								ClaimName: cfg.WorkspacePVC,
							},
						},
					}},
				},
			},
		},
	}
	return job, nil
}
