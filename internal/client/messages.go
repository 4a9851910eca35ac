package client

const (
	msgUploadFirst = "请先上传一张照片，我们将为你生成 Apple 风肖像。"
	msgGenerating  = "正在生成高端肖像，请稍候..."
	msgDone        = "生成完成！欢迎下载你的高端肖像。"
	msgFailed      = "生成失败，请稍后再试。"
	msgNoImage     = "生成成功，但未返回图片。请稍后再试。"

	labelIdle = "生成 Apple 高管风肖像"
	labelBusy = "生成中..."
)
